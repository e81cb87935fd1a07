package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"inventory-api/internal/model"
	"inventory-api/pkg/apierror"
)

const bcryptCost = 12

// pgUniqueViolation is the SQLSTATE for unique constraint failures. The
// explicit existence checks run first; this is the backstop for concurrent
// registrations racing past them.
const pgUniqueViolation = "23505"

type AuthService struct {
	users  UserRepository
	tokens *TokenService
}

func NewAuthService(users UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// NormalizeUsername removes all whitespace, matching how usernames are
// stored and looked up.
func NormalizeUsername(username string) string {
	return strings.Join(strings.Fields(username), "")
}

// Register creates the user and returns a freshly issued session token.
// Uniqueness violations surface as 409 with the offending field keyed.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	username := NormalizeUsername(req.Username)
	email := strings.TrimSpace(req.Email)

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		return "", apierror.WithFields(map[string][]string{
			"username": {"The username has already been taken."},
		}, http.StatusConflict)
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if taken {
		return "", apierror.WithFields(map[string][]string{
			"email": {"The email has already been taken."},
		}, http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", apierror.WithFields(map[string][]string{
				"general": {"The username or email has already been taken."},
			}, http.StatusConflict)
		}
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login verifies the credentials and returns a new session token. A missing
// user and a wrong password are reported distinctly, matching the API's
// observable contract.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.FindByUsername(ctx, NormalizeUsername(req.Username))
	if errors.Is(err, model.ErrUserNotFound) {
		return "", apierror.New("User not found", http.StatusNotFound)
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", apierror.New("Invalid credentials", http.StatusUnauthorized)
	}

	return s.tokens.Issue(user.ID)
}
