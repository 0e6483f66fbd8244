package commands

import (
	"context"

	"github.com/google/uuid"

	"barberbook/internal/domain/user"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/pkg/jwt"
	"barberbook/internal/pkg/password"
)

type AuthResult struct {
	Token string
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

type AuthCommands interface {
	Register(ctx context.Context, name, email, rawPassword, role string) (*AuthResult, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthResult, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, name, email, rawPassword, role string) (*AuthResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	passwordVO, err := user.NewPassword(rawPassword)
	if err != nil {
		return nil, err
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(passwordVO.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(name, emailVO, hash, roleVO)
	if err := a.userRepo.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return a.issueToken(u)
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	u, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !u.IsActive() {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.Compare(u.PasswordHash(), rawPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	return a.issueToken(u)
}

func (a *authUseCaseImpl) issueToken(u *user.User) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}
	return &AuthResult{
		Token: token,
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
		Role:  u.Role().String(),
	}, nil
}
