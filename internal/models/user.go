package models

// User is an entry of the console's user directory.
type User struct {
	ID    int    `json:"id" mapstructure:"id"`
	Login string `json:"login" mapstructure:"login"`
	Role  string `json:"role,omitempty" mapstructure:"role"`
}

// MaskedPassword is what the users view shows in place of any password.
const MaskedPassword = "••••••••"
