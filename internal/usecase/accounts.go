package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
	"resume-builder/pkg/apperror"
)

// AccountService handles registration and login. It stands in for the
// identity collaborator: CurrentUserID resolution happens in the HTTP
// middleware, every other core operation takes the identity explicitly.
type AccountService struct {
	users     UsersRepo
	jwtSecret []byte
	log       *zap.Logger
}

func NewAccountService(users UsersRepo, jwtSecret []byte, log *zap.Logger) *AccountService {
	return &AccountService{users: users, jwtSecret: jwtSecret, log: log}
}

func (s *AccountService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Plan:         domain.PlanFree,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials and returns a signed session token. Wrong
// email and wrong password produce the same error.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", nil, apperror.Unauthenticated("invalid credentials")
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, apperror.Unauthenticated("invalid credentials")
	}
	token, err := auth.IssueToken(s.jwtSecret, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to a user id.
func (s *AccountService) Authenticate(tokenStr string) (uuid.UUID, error) {
	uid, err := auth.ParseToken(s.jwtSecret, tokenStr)
	if err != nil {
		return uuid.Nil, apperror.Unauthenticated("invalid or expired token")
	}
	return uid, nil
}
