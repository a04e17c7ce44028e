package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/milldesk/milldesk-api/internal/domain/repository"
	"github.com/milldesk/milldesk-api/pkg/apperror"
	"github.com/milldesk/milldesk-api/pkg/pagination"
	"github.com/milldesk/milldesk-api/pkg/utils"
)

// UserService handles operator account management.
type UserService struct {
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, permissionRepo repository.PermissionRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo, permissionRepo: permissionRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
	RoleNames []string
}

// CreateUser creates an operator account and assigns the requested roles.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashed,
		Phone:     input.Phone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	for _, name := range input.RoleNames {
		role, err := s.roleRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, apperror.NewBadRequestError("Unknown role: " + name)
		}
		if err := s.userRepo.AssignRole(ctx, user.ID, role.ID); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetWithRoles(ctx, user.ID)
}

// GetUser retrieves a user with roles loaded.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers lists users with page-based pagination.
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// DeleteUser soft-deletes an operator account. Admin accounts must have the
// admin role revoked first so the seeded administrator cannot be removed by
// accident.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.HasRole("admin") {
		return apperror.NewBadRequestError("Remove the admin role before deleting this account")
	}
	return s.userRepo.Delete(ctx, id)
}

// ListRoles returns the assignable roles with their permissions loaded.
func (s *UserService) ListRoles(ctx context.Context) ([]entity.Role, error) {
	return s.roleRepo.List(ctx)
}

// ListPermissions returns all known permissions.
func (s *UserService) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	return s.permissionRepo.List(ctx)
}

// AssignRole grants a role to a user.
func (s *UserService) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) (*entity.User, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NewBadRequestError("Unknown role: " + roleName)
	}
	if err := s.userRepo.AssignRole(ctx, userID, role.ID); err != nil {
		return nil, err
	}
	return s.userRepo.GetWithRoles(ctx, userID)
}

// RemoveRole revokes a role from a user.
func (s *UserService) RemoveRole(ctx context.Context, userID uuid.UUID, roleName string) (*entity.User, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NewBadRequestError("Unknown role: " + roleName)
	}
	if err := s.userRepo.RemoveRole(ctx, userID, role.ID); err != nil {
		return nil, err
	}
	return s.userRepo.GetWithRoles(ctx, userID)
}
