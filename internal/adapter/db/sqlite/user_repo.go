package sqlite

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/wspjoy2011/sql-repository-example/pkg/errors"

	"github.com/wspjoy2011/sql-repository-example/internal/domain/user"
)

// UserRepo implements the usecase Repository interface on top of GORM.
// The default store is a file-backed SQLite database, but any GORM handle
// with a migrated users table works.
type UserRepo struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepo creates a new instance of UserRepo.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"` // Surrogate identifier with auto-increment
	Email   string `gorm:"not null;unique"`          // Unique email address (required)
	Name    string `gorm:"not null"`                 // First name (required)
	Surname string `gorm:"not null"`                 // Last name (required)
	Age     int    `gorm:"not null"`                 // Age in years (required)
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Migrate ensures the users table exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserSchema{}); err != nil {
		return apperrors.NewStorageError("failed to migrate users table", err)
	}
	return nil
}

func toEntity(m *UserSchema) *user.User {
	return &user.User{
		ID:      m.ID,
		Email:   m.Email,
		Name:    m.Name,
		Surname: m.Surname,
		Age:     m.Age,
	}
}

// Create inserts a new user into the database and returns the assigned id.
func (r *UserRepo) Create(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Email:   u.Email,
		Name:    u.Name,
		Surname: u.Surname,
		Age:     u.Age,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email on insert", zap.String("email", u.Email))
			return 0, apperrors.NewAlreadyExistsError("user",
				fmt.Sprintf("user with email %s already exists", u.Email))
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return 0, apperrors.NewStorageError("failed to create user", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByEmail retrieves a user from the database by their email address.
// A missing email is not an error: it returns (nil, nil).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, apperrors.NewStorageError("failed to get user by email", err)
	}

	return toEntity(&model), nil
}

// List retrieves all users from the database ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, apperrors.NewStorageError("failed to list users", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = *toEntity(&model)
	}

	return users, nil
}

// UpdateByEmail replaces name, surname and age of the user with the given
// email. The id and email stay fixed. Returns the number of affected rows;
// zero means no user with that email exists.
func (r *UserRepo) UpdateByEmail(ctx context.Context, email, name, surname string, age int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&UserSchema{}).Where("email = ?", email).Updates(map[string]interface{}{
		"name":    name,
		"surname": surname,
		"age":     age,
	})
	if result.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(result.Error), zap.String("email", email))
		return 0, apperrors.NewStorageError("failed to update user", result.Error)
	}

	r.log.Info("user updated in db", zap.String("email", email), zap.Int64("rows", result.RowsAffected))
	return result.RowsAffected, nil
}

// DeleteByEmail removes the user with the given email. Returns the number
// of affected rows; zero means no user with that email exists.
func (r *UserRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Where("email = ?", email).Delete(&UserSchema{})
	if result.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(result.Error), zap.String("email", email))
		return 0, apperrors.NewStorageError("failed to delete user", result.Error)
	}

	r.log.Info("user deleted in db", zap.String("email", email), zap.Int64("rows", result.RowsAffected))
	return result.RowsAffected, nil
}

// DeleteAll removes every user and returns the number of deleted rows.
func (r *UserRepo) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&UserSchema{})
	if result.Error != nil {
		r.log.Error("failed to delete all users in db", zap.Error(result.Error))
		return 0, apperrors.NewStorageError("failed to delete all users", result.Error)
	}

	r.log.Info("all users deleted in db", zap.Int64("rows", result.RowsAffected))
	return result.RowsAffected, nil
}
