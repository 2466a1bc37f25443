// Package services implements the credential service: registration,
// authentication, and the password-reset token lifecycle. It is the sole
// mutator of user state and owns every invariant that spans the store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkarpov/userkeeper/internal/common"
	"github.com/mkarpov/userkeeper/internal/dbx"
	"github.com/mkarpov/userkeeper/internal/passwords"
	"github.com/mkarpov/userkeeper/internal/server/auth"
	"github.com/mkarpov/userkeeper/internal/server/config"
	"github.com/mkarpov/userkeeper/internal/server/models"
	"github.com/mkarpov/userkeeper/internal/server/repositories/repomanager"
)

// resetTokenBytes is the entropy of a reset token in bytes; rendered as hex
// the token is twice as many characters (32 for 128 bits).
const resetTokenBytes = 16

// CredentialService orchestrates all credential operations. It holds no
// mutable in-memory state; everything lives in the store, so concurrent
// requests only contend at the database.
type CredentialService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewCredentialService constructs the service with an explicitly injected
// store handle and configuration.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CredentialService {
	return &CredentialService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with the given email and password.
// It fails with common.ErrorWeakPassword when the password does not satisfy
// the policy and with common.ErrorEmailTaken when the email is already
// registered.
func (s *CredentialService) Register(ctx context.Context, email, password string) (*models.User, error) {

	if !passwords.Validate(password) {
		return nil, common.ErrorWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, &models.User{Email: email, Password: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate checks email and password and, on success, returns a signed
// access token identifying the user. Unknown email and wrong password both
// yield common.ErrorInvalidCredentials: callers must not be able to tell
// whether an account exists.
func (s *CredentialService) Authenticate(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// RequestPasswordReset issues a fresh reset token for the user with the given
// email and persists it, overwriting any outstanding token (which thereby
// becomes permanently invalid). The token is returned to the caller; delivery
// is the transport layer's concern. Tokens do not expire.
func (s *CredentialService) RequestPasswordReset(ctx context.Context, email string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorEmailNotFound
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	user.ResetToken = token
	if err := repo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("error saving reset token: %w", err)
	}

	return token, nil
}

// RedeemPasswordReset consumes a reset token: it verifies the token, applies
// the new password, and clears the token, all inside one transaction so a
// token can be redeemed at most once even under concurrent redemption.
func (s *CredentialService) RedeemPasswordReset(ctx context.Context, token, newPassword string) error {

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByResetToken(ctx, token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorInvalidToken
			}
			return fmt.Errorf("error fetching user by reset token: %w", err)
		}

		if !passwords.Validate(newPassword) {
			return common.ErrorWeakPassword
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return common.ErrorInternal
		}

		user.Password = string(hash)
		user.ResetToken = ""

		if err := repo.Update(ctx, user); err != nil {
			return fmt.Errorf("error updating password: %w", err)
		}

		return nil
	})
}
