package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarpov/userkeeper/internal/common"
)

const weakPasswordDetail = "Password must start with a capital letter, contain '@' and at least one number."

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgetPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the User Management API"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	_, err := s.credentials.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorWeakPassword):
			s.respondDetail(w, http.StatusBadRequest, weakPasswordDetail)
		case errors.Is(err, common.ErrorEmailTaken):
			s.respondDetail(w, http.StatusBadRequest, "Email already registered")
		default:
			s.logger.Error(r.Context(), "signup failed", "error", err)
			s.respondDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "User registered successfully"})
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	accessToken, err := s.credentials.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			s.respondDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "signin failed", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":      "Login successful",
		"access_token": accessToken,
	})
}

func (s *Server) handleForgetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req forgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, err := s.credentials.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorEmailNotFound) {
			s.respondDetail(w, http.StatusNotFound, "Email not found")
			return
		}
		s.logger.Error(r.Context(), "forget-password failed", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// the token is returned directly in the response; out-of-band delivery
	// is the caller's responsibility
	s.respondJSON(w, http.StatusOK, map[string]string{"reset_token": token})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	err := s.credentials.RedeemPasswordReset(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidToken):
			s.respondDetail(w, http.StatusBadRequest, "Invalid token")
		case errors.Is(err, common.ErrorWeakPassword):
			s.respondDetail(w, http.StatusBadRequest, weakPasswordDetail)
		default:
			s.logger.Error(r.Context(), "reset-password failed", "error", err)
			s.respondDetail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error(context.Background(), "response encoding failed", "error", err)
	}
}

func (s *Server) respondDetail(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, map[string]string{"detail": detail})
}
