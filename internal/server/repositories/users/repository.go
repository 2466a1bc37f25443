package users

import (
	"context"

	"github.com/mkarpov/userkeeper/internal/server/models"
)

// Repository is the credential store consumed by the credential service.
// Every call is atomic with respect to concurrent callers.
type Repository interface {
	// Create inserts a new user, assigning a fresh ID. A user with the same
	// email already existing is reported as common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with exactly this email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByResetToken returns the user whose active reset token exactly equals
	// the given non-empty token, or common.ErrorNotFound. An empty token never
	// matches.
	GetByResetToken(ctx context.Context, token string) (*models.User, error)

	// Update persists password and reset token mutations for an existing user.
	// Last writer wins; the write is atomic per row.
	Update(ctx context.Context, user *models.User) error
}
