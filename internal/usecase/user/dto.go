package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Email   string `validate:"required,email"`
	Name    string `validate:"required,max=50"`
	Surname string `validate:"required,max=50"`
	Age     int    `validate:"gte=0"`
}

// CreateUserResponse represents the response payload after creating a user.
type CreateUserResponse struct {
	User User
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	Email string `validate:"required,email"`
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	User User
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// UpdateUserRequest represents the request payload for updating an existing
// user. The email identifies the record; id and email themselves never change.
type UpdateUserRequest struct {
	Email   string `validate:"required,email"`
	Name    string `validate:"required,max=50"`
	Surname string `validate:"required,max=50"`
	Age     int    `validate:"gte=0"`
}

// UpdateUserResponse represents the response payload after updating a user.
type UpdateUserResponse struct {
	Email string
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	Email string `validate:"required,email"`
}

// DeleteUserResponse represents the response payload after deleting a user.
type DeleteUserResponse struct {
	Email string
}

// DeleteAllUsersResponse represents the response payload after purging the store.
type DeleteAllUsersResponse struct {
	Deleted int64
}

// User represents a user DTO for rendering.
type User struct {
	ID      int64
	Email   string
	Name    string
	Surname string
	Age     int
}
