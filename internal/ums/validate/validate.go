// Package validate holds the account form rules. Every function is pure:
// the same input always yields the same message, and an empty message means
// the value is valid. UIs call Field on each change for immediate feedback
// and the form validators on submit as the gate.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names, as used by the forms and in API error maps.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldPhone           = "phone"
)

// Mode selects which rule set applies to fields whose rules differ by form.
type Mode int

const (
	ModeRegister Mode = iota
	ModeLogin
	ModeProfile
)

func (m Mode) String() string {
	switch m {
	case ModeRegister:
		return "register"
	case ModeLogin:
		return "login"
	case ModeProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// ParseMode maps the API spelling of a mode back to Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "register":
		return ModeRegister, true
	case "login":
		return ModeLogin, true
	case "profile":
		return ModeProfile, true
	default:
		return 0, false
	}
}

// Context carries what a single field rule may need beyond its own value.
// Password is the sibling password, read by the confirm rule only.
type Context struct {
	Mode     Mode
	Password string
}

// PasswordSpecials is the set a register password must draw at least one
// character from.
const PasswordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const (
	NameMinLength     = 2
	NameMaxLength     = 50
	PasswordMinLength = 8
)

// ws is the whitespace class used inside the patterns. RE2's \s is ASCII
// only; the rules treat every Unicode space separator and BOM as whitespace.
const ws = `\s\v\p{Z}\x{FEFF}`

var (
	emailPattern = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z` + ws + `'-]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-` + ws + `.]?[(]?[0-9]{1,4}[)]?[-` + ws + `.]?[0-9]{1,9}$`)
)

// Field validates one field. Unknown field names are always valid.
func Field(name, value string, ctx Context) string {
	switch name {
	case FieldEmail:
		return Email(value)
	case FieldPassword:
		if ctx.Mode == ModeLogin {
			return LoginPassword(value)
		}
		return Password(value)
	case FieldConfirmPassword:
		return ConfirmPassword(value, ctx.Password)
	case FieldFirstName:
		return Name(value, "First name")
	case FieldLastName:
		return Name(value, "Last name")
	case FieldPhone:
		return Phone(value)
	default:
		return ""
	}
}

func isBlank(s string) bool { return strings.TrimFunc(s, isSpace) == "" }

func isSpace(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }

func Email(value string) string {
	if isBlank(value) {
		return "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

// Password applies the strength rules used at registration. The first rule
// that fails decides the message.
func Password(value string) string {
	switch {
	case isBlank(value):
		return "Password is required"
	case utf8.RuneCountInString(value) < PasswordMinLength:
		return "Password must be at least 8 characters long"
	case !strings.ContainsFunc(value, isASCIIUpper):
		return "Password must contain at least one uppercase letter"
	case !strings.ContainsFunc(value, isASCIILower):
		return "Password must contain at least one lowercase letter"
	case !strings.ContainsFunc(value, isASCIIDigit):
		return "Password must contain at least one number"
	case !strings.ContainsAny(value, PasswordSpecials):
		return "Password must contain at least one special character"
	default:
		return ""
	}
}

// LoginPassword only requires something to be typed. Strength is a sign up
// concern; at login the stored credential decides.
func LoginPassword(value string) string {
	if isBlank(value) {
		return "Password is required"
	}
	return ""
}

func ConfirmPassword(value, password string) string {
	if isBlank(value) {
		return "Please confirm your password"
	}
	if value != password {
		return "Passwords do not match"
	}
	return ""
}

// Name validates a first or last name; label is used in the messages.
func Name(value, label string) string {
	n := utf8.RuneCountInString(value)
	switch {
	case isBlank(value):
		return label + " is required"
	case n < NameMinLength:
		return label + " must be at least 2 characters long"
	case !namePattern.MatchString(value):
		return label + " can only contain letters, spaces, hyphens and apostrophes"
	case n > NameMaxLength:
		return label + " cannot exceed 50 characters"
	default:
		return ""
	}
}

// Phone is optional: blank input is valid.
func Phone(value string) string {
	if isBlank(value) {
		return ""
	}
	if !phonePattern.MatchString(value) {
		return "Please enter a valid phone number"
	}
	return ""
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
