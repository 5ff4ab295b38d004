package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xyzcommerce/supplier-discount-backend/internal/users"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/security"
)

// AdminCreateUserRequest contains the payload for the admin user-creation
// surface. Unlike self-service registration, any valid role is allowed.
type AdminCreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=admin supplier customer"`
}

// AdminUserService handles administrative user creation.
type AdminUserService interface {
	CreateUser(ctx context.Context, req AdminCreateUserRequest) (*users.UserDTO, error)
}

// AdminUserServiceParams names the dependencies for the admin user flow.
type AdminUserServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type adminUserService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewAdminUserService builds an admin user-creation service.
func NewAdminUserService(params AdminUserServiceParams) (AdminUserService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &adminUserService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *adminUserService) CreateUser(ctx context.Context, req AdminCreateUserRequest) (*users.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	role, err := enums.ParseMemberRole(strings.TrimSpace(req.Role))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *users.UserDTO
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
			FirstName:    strings.TrimSpace(req.FirstName),
			LastName:     strings.TrimSpace(req.LastName),
			Role:         role,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
