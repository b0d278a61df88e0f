package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	"github.com/launchvest/launchvest/internal/domain/port/usecase"
	mockauth "github.com/launchvest/launchvest/mocks/port/auth"
	mockcore "github.com/launchvest/launchvest/mocks/port/core"
	mockpersistence "github.com/launchvest/launchvest/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type userFixture struct {
	service  *Service
	userRepo *mockpersistence.MockUserRepository
	hasher   *mockauth.MockPasswordHasher
	tokens   *mockauth.MockTokenService
}

func newUserFixture() *userFixture {
	userRepo := &mockpersistence.MockUserRepository{}
	hasher := &mockauth.MockPasswordHasher{}
	tokens := &mockauth.MockTokenService{}
	tp := mockcore.NewFixedTimeProvider(fixedNow)
	logger := mockcore.NewRelaxedLogger()

	return &userFixture{
		service:  NewUserService(userRepo, hasher, tokens, tp, logger),
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	input := usecase.RegisterInput{
		Email:    "Alice@Example.com",
		Password: "s3cret",
		Name:     "Alice",
		Role:     entity.RoleInvestor,
	}

	t.Run("creates the account and issues a token", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		f.hasher.On("Hash", "s3cret").Return("hashed", nil).Once()
		f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleInvestor
		})).Return(nil).Once()
		f.tokens.On("Issue", mock.Anything, entity.RoleInvestor).Return("token-123", nil).Once()

		result, err := f.service.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, "token-123", result.Token)
		assert.Equal(t, "alice@example.com", result.User.Email)
	})

	t.Run("duplicate email conflicts without creating a record", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(&entity.User{ID: 1}, nil).Once()

		_, err := f.service.Register(ctx, input)

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		f := newUserFixture()

		_, err := f.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c"})

		assert.ErrorIs(t, err, errs.ErrMissingField)
		f.userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	stored := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed", Role: entity.RoleInvestor}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()
		f.hasher.On("Verify", "hashed", "s3cret").Return(true).Once()
		f.tokens.On("Issue", uint64(1), entity.RoleInvestor).Return("token-123", nil).Once()

		result, err := f.service.Login(ctx, "alice@example.com", "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, "token-123", result.Token)
	})

	t.Run("wrong password fails with authentication error", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()
		f.hasher.On("Verify", "hashed", "wrong").Return(false).Once()

		_, err := f.service.Login(ctx, "alice@example.com", "wrong")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("unknown email fails the same way as a wrong password", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.service.Login(ctx, "ghost@example.com", "anything")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("only profile fields change", func(t *testing.T) {
		f := newUserFixture()
		stored := &entity.User{ID: 1, Email: "alice@example.com", Name: "Alice", Role: entity.RoleInvestor}
		f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(stored, nil).Once()
		f.userRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		bio := "Angel investor"
		updated, err := f.service.UpdateProfile(ctx, 1, usecase.ProfileUpdateInput{Bio: &bio})

		assert.NoError(t, err)
		assert.Equal(t, "Angel investor", updated.Bio)
		assert.Equal(t, "alice@example.com", updated.Email)
		assert.Equal(t, entity.RoleInvestor, updated.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserFixture()
		f.userRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.service.UpdateProfile(ctx, 9, usecase.ProfileUpdateInput{})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
