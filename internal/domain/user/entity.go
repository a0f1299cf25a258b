package user

// User represents a user record managed by the application.
type User struct {
	ID      int64  // ID is the surrogate identifier assigned by the store on insert
	Email   string // Email is the unique email address, the external lookup key
	Name    string // Name is the first name of the user
	Surname string // Surname is the last name of the user
	Age     int    // Age is the age of the user in years
}
