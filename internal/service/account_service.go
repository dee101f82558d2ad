package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/repository"
	"github.com/icerikfikri/blog-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AccountService sign-up, login and session lookup
type AccountService interface {
	SignUp(ctx context.Context, req *domain.SignUpRequest) (*domain.AccountResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	Me(ctx context.Context, accountID string) (*domain.AccountResponse, error)
}

type accountService struct {
	repo       repository.AccountRepository
	jwtManager *jwt.Manager
}

// NewAccountService creates a new AccountService
func NewAccountService(repo repository.AccountRepository, jwtManager *jwt.Manager) AccountService {
	return &accountService{repo: repo, jwtManager: jwtManager}
}

// SignUp creates an account with a bcrypt password hash
func (s *accountService) SignUp(ctx context.Context, req *domain.SignUpRequest) (*domain.AccountResponse, error) {
	email := normalizeEmail(req.Email)

	// duplicate check
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hashed),
		Nickname: strings.TrimSpace(req.Nickname),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

// Login verifies the password and issues a session token
func (s *accountService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(account.ID, account.Email, account.Nickname)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Account:     account.ToResponse(),
		AccessToken: token,
		ExpiresIn:   int(s.jwtManager.ExpiresIn().Seconds()),
	}, nil
}

// Me returns the account behind a session
func (s *accountService) Me(ctx context.Context, accountID string) (*domain.AccountResponse, error) {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
