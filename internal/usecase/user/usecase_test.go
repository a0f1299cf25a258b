package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	apperrors "github.com/wspjoy2011/sql-repository-example/pkg/errors"

	domain "github.com/wspjoy2011/sql-repository-example/internal/domain/user"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) UpdateByEmail(ctx context.Context, email, name, surname string, age int) (int64, error) {
	args := m.Called(ctx, email, name, surname, age)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockRepository) {
	repo := new(MockRepository)
	svc := New(repo, zaptest.NewLogger(t))
	return svc, repo
}

func TestCreateUser_Success(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "a@b.com").Return(nil, nil)
	repo.On("Create", ctx, &domain.User{Email: "a@b.com", Name: "A", Surname: "B", Age: 20}).
		Return(int64(1), nil)

	resp, err := svc.CreateUser(ctx, CreateUserRequest{Email: "a@b.com", Name: "A", Surname: "B", Age: 20})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, User{ID: 1, Email: "a@b.com", Name: "A", Surname: "B", Age: 20}, resp.User)

	repo.AssertExpectations(t)
}

func TestCreateUser_NormalizesInput(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "a@b.com").Return(nil, nil)
	repo.On("Create", ctx, &domain.User{Email: "a@b.com", Name: "A", Surname: "B", Age: 20}).
		Return(int64(1), nil)

	resp, err := svc.CreateUser(ctx, CreateUserRequest{
		Email:   "  A@B.com ",
		Name:    " A ",
		Surname: " B ",
		Age:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resp.User.Email)
	assert.Equal(t, "A", resp.User.Name)

	repo.AssertExpectations(t)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "a@b.com").
		Return(&domain.User{ID: 1, Email: "a@b.com", Name: "A", Surname: "B", Age: 20}, nil)

	resp, err := svc.CreateUser(ctx, CreateUserRequest{Email: "a@b.com", Name: "C", Surname: "D", Age: 30})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsAlreadyExists(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_ValidationFailures(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    CreateUserRequest
		field string
	}{
		{
			name:  "missing email",
			in:    CreateUserRequest{Name: "A", Surname: "B", Age: 20},
			field: "email",
		},
		{
			name:  "malformed email",
			in:    CreateUserRequest{Email: "not-an-email", Name: "A", Surname: "B", Age: 20},
			field: "email",
		},
		{
			name:  "blank name",
			in:    CreateUserRequest{Email: "a@b.com", Name: "   ", Surname: "B", Age: 20},
			field: "name",
		},
		{
			name:  "blank surname",
			in:    CreateUserRequest{Email: "a@b.com", Name: "A", Surname: "", Age: 20},
			field: "surname",
		},
		{
			name:  "negative age",
			in:    CreateUserRequest{Email: "a@b.com", Name: "A", Surname: "B", Age: -1},
			field: "age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CreateUser(ctx, tt.in)
			require.Error(t, err)
			assert.Nil(t, resp)

			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestGetUser_Success(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "a@b.com").
		Return(&domain.User{ID: 1, Email: "a@b.com", Name: "A", Surname: "B", Age: 20}, nil)

	resp, err := svc.GetUser(ctx, GetUserRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Email: "a@b.com", Name: "A", Surname: "B", Age: 20}, resp.User)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

	resp, err := svc.GetUser(ctx, GetUserRequest{Email: "nobody@example.com"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "nobody@example.com")
}

func TestGetUser_StorageError(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	storageErr := apperrors.NewStorageError("failed to get user by email", errors.New("disk I/O error"))
	repo.On("GetByEmail", ctx, "a@b.com").Return(nil, storageErr)

	resp, err := svc.GetUser(ctx, GetUserRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.False(t, apperrors.IsNotFound(err))
}

func TestListUsers(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.User{
		{ID: 1, Email: "a@b.com", Name: "A", Surname: "B", Age: 20},
		{ID: 2, Email: "c@d.com", Name: "C", Surname: "D", Age: 30},
	}, nil)

	resp, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, int64(1), resp.Users[0].ID)
	assert.Equal(t, "c@d.com", resp.Users[1].Email)
}

func TestListUsers_Empty(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.User{}, nil)

	resp, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Users)
}

func TestUpdateUser_Success(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("UpdateByEmail", ctx, "a@b.com", "A", "B", 21).Return(int64(1), nil)

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{Email: "a@b.com", Name: "A", Surname: "B", Age: 21})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resp.Email)

	repo.AssertExpectations(t)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("UpdateByEmail", ctx, "nobody@example.com", "A", "B", 21).Return(int64(0), nil)

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{Email: "nobody@example.com", Name: "A", Surname: "B", Age: 21})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateUser_ValidationSkipsRepository(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.UpdateUser(ctx, UpdateUserRequest{Email: "a@b.com", Name: "", Surname: "B", Age: 21})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))

	repo.AssertNotCalled(t, "UpdateByEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUser_Success(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("DeleteByEmail", ctx, "a@b.com").Return(int64(1), nil)

	resp, err := svc.DeleteUser(ctx, DeleteUserRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resp.Email)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("DeleteByEmail", ctx, "nobody@example.com").Return(int64(0), nil)

	resp, err := svc.DeleteUser(ctx, DeleteUserRequest{Email: "nobody@example.com"})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteAllUsers(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	repo.On("DeleteAll", ctx).Return(int64(3), nil)

	resp, err := svc.DeleteAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Deleted)
}
