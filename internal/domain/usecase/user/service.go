package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	authport "github.com/launchvest/launchvest/internal/domain/port/auth"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/domain/port/persistence"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Service implements user business operations: registration, login and
// profile management
type Service struct {
	userRepo     persistence.UserRepository
	hasher       authport.PasswordHasher
	tokens       authport.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo persistence.UserRepository,
	hasher authport.PasswordHasher,
	tokens authport.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account and issues a token for it.
// A taken email fails with ErrDuplicateEmail and writes nothing.
func (s *Service) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", errs.ErrMissingField)
	}

	// Check first for a friendly conflict error; the unique index on
	// email is the real guarantee under concurrent registration
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := entity.NewUser(email, hash, input.Name, input.Role, input.Bio, "", s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(newUser.ID, newUser.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": newUser.ID,
		"role":    newUser.Role.String(),
	})

	return &usecase.AuthResult{User: newUser, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password fail identically so the response does not leak which
// accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	if !s.hasher.Verify(existing.PasswordHash, password) {
		return nil, errs.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(existing.ID, existing.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &usecase.AuthResult{User: existing, Token: token}, nil
}

// GetProfile retrieves a user's profile
func (s *Service) GetProfile(ctx context.Context, userID uint64) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies self-service profile edits. Email, role and
// password never change through this path.
func (s *Service) UpdateProfile(ctx context.Context, userID uint64, input usecase.ProfileUpdateInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing.ApplyProfileUpdate(input.Name, input.Bio, input.AvatarURL, s.timeProvider)

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// ListUsers retrieves users with totals. The handler layer enforces
// that only admins reach this.
func (s *Service) ListUsers(ctx context.Context, opts persistence.ListOptions) ([]*entity.User, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultPageLimit
	}
	if opts.Limit > maxPageLimit {
		opts.Limit = maxPageLimit
	}

	return s.userRepo.List(ctx, opts)
}
