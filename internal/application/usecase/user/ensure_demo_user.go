// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// EnsureDemoUserInput carries the demo account credentials.
type EnsureDemoUserInput struct {
	Username string
	Password string
}

// EnsureDemoUserOutput carries the resolved demo user.
type EnsureDemoUserOutput struct {
	User *entity.User
}

// EnsureDemoUserUseCase resolves the demo user at startup, creating it when
// absent. Every request handler operates on this account.
type EnsureDemoUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewEnsureDemoUserUseCase creates a new EnsureDemoUserUseCase instance.
func NewEnsureDemoUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *EnsureDemoUserUseCase {
	return &EnsureDemoUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute looks up the demo user by username and creates it when missing.
func (uc *EnsureDemoUserUseCase) Execute(ctx context.Context, input EnsureDemoUserInput) (*EnsureDemoUserOutput, error) {
	existing, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return &EnsureDemoUserOutput{User: existing}, nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up demo user: %w", err)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	demoUser := entity.NewUser(input.Username, hash)
	if err := uc.userRepo.Create(ctx, demoUser); err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	slog.Info("Seeded demo user", "username", demoUser.Username, "userID", demoUser.ID)
	return &EnsureDemoUserOutput{User: demoUser}, nil
}
