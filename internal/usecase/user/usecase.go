package user

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/wspjoy2011/sql-repository-example/pkg/errors"

	domain "github.com/wspjoy2011/sql-repository-example/internal/domain/user"

	"github.com/go-playground/validator/v10"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., SQLite, PostgreSQL) to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)                               // Insert a new user, returns assigned id
	GetByEmail(ctx context.Context, email string) (*domain.User, error)                      // Retrieve user by email, (nil, nil) on miss
	List(ctx context.Context) ([]domain.User, error)                                         // List all users ordered by id
	UpdateByEmail(ctx context.Context, email, name, surname string, age int) (int64, error)  // Update mutable fields, returns rows affected
	DeleteByEmail(ctx context.Context, email string) (int64, error)                          // Delete user by email, returns rows affected
	DeleteAll(ctx context.Context) (int64, error)                                            // Delete every user, returns rows affected
}

// Service implements the business logic for user management operations.
// It validates input shape, enforces the domain error taxonomy and
// orchestrates repository calls.
type Service struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a
// field-scoped domain validation error.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	field := strings.ToLower(e.Field())

	var message string
	switch e.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", field)
	case "email":
		message = fmt.Sprintf("%s must be a valid email address", field)
	case "gte":
		message = fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		message = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}

	return apperrors.NewValidationError(field, message)
}

// normalizeEmail trims surrounding whitespace and lowercases the address,
// the canonical form used as the lookup key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser creates a new user after validating the request and checking
// email uniqueness.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)

	s.log.Info("creating user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		s.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperrors.NewAlreadyExistsError("user",
			fmt.Sprintf("user with email %s already exists", in.Email))
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Email:   in.Email,
		Name:    in.Name,
		Surname: in.Surname,
		Age:     in.Age,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &CreateUserResponse{User: User{
		ID:      id,
		Email:   in.Email,
		Name:    in.Name,
		Surname: in.Surname,
		Age:     in.Age,
	}}, nil
}

// GetUser retrieves a user by email after validating the request.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	in.Email = normalizeEmail(in.Email)

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to get user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if u == nil {
		s.log.Warn("user not found", zap.String("email", in.Email))
		return nil, apperrors.NewNotFoundError("user",
			fmt.Sprintf("user with email %s not found", in.Email))
	}

	return &GetUserResponse{User: User{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Surname: u.Surname,
		Age:     u.Age,
	}}, nil
}

// ListUsers retrieves all users ordered by id.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	domainUsers, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:      du.ID,
			Email:   du.Email,
			Name:    du.Name,
			Surname: du.Surname,
			Age:     du.Age,
		}
	}

	return &ListUsersResponse{Users: users}, nil
}

// UpdateUser replaces name, surname and age of an existing user after
// validating the request. The id and email stay fixed.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UpdateUserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)

	s.log.Info("updating user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	rows, err := s.repo.UpdateByEmail(ctx, in.Email, in.Name, in.Surname, in.Age)
	if err != nil {
		s.log.Error("failed to update user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		s.log.Warn("user not found for update", zap.String("email", in.Email))
		return nil, apperrors.NewNotFoundError("user",
			fmt.Sprintf("user with email %s not found", in.Email))
	}

	return &UpdateUserResponse{Email: in.Email}, nil
}

// DeleteUser deletes a user by email after validating the request.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	in.Email = normalizeEmail(in.Email)

	s.log.Info("deleting user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	rows, err := s.repo.DeleteByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to delete user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		s.log.Warn("user not found for delete", zap.String("email", in.Email))
		return nil, apperrors.NewNotFoundError("user",
			fmt.Sprintf("user with email %s not found", in.Email))
	}

	return &DeleteUserResponse{Email: in.Email}, nil
}

// DeleteAllUsers removes every user from the store.
func (s *Service) DeleteAllUsers(ctx context.Context) (*DeleteAllUsersResponse, error) {
	s.log.Info("deleting all users")

	rows, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.log.Error("failed to delete all users", zap.Error(err))
		return nil, err
	}

	return &DeleteAllUsersResponse{Deleted: rows}, nil
}
