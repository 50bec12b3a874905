package domain

import "time"

// User is an account. Email is the unique key and is compared exactly as
// stored, so "A@b.com" and "a@b.com" are different accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id, PHC encoded
	FirstName    string
	LastName     string
	Phone        string // optional, empty when not given
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Registration is a candidate account as submitted on the sign up form.
// Password is plaintext and never leaves the session layer.
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserPatch is a partial profile update. Nil fields are left untouched.
// Passwords cannot be changed through a patch.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Phone     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil && p.Phone == nil
}

// Apply returns u with every non-nil field of p merged in.
func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	return u
}
