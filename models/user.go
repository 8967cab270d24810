package models

// User represents an account record used by the registered-user
// authentication flow. It contains identity attributes and the stored
// password hash.
//
// PasswordHash must always be a derived value (argon2id, PHC-encoded),
// never the plaintext password. Verification is comparison-only.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database; not writable by clients.
	UserID int64 `json:"user_id"`

	// Username is the unique external-facing name of the user.
	// Used as the token subject in the Basic-credential flow.
	Username string `json:"username" validate:"required"`

	// Email is the unique login identifier for the registered-user flow.
	Email string `json:"email" validate:"required,email"`

	// PasswordHash is the PHC-encoded argon2id hash of the password.
	// Never serialized in responses.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "tab_user"
}
