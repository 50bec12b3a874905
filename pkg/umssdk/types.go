package umssdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "validation_failed")
	Error string `json:"error" example:"validation_failed"`

	// Message is a human readable description
	Message string `json:"message" example:"Please fix the errors before submitting"`

	// Details maps field names to validation messages
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Account Types
// ============================================================================

// RegisterRequest is the sign up form.
type RegisterRequest struct {
	Email           string `json:"email" example:"ada@example.com"`
	Password        string `json:"password" example:"Abc123!@"`
	ConfirmPassword string `json:"confirmPassword" example:"Abc123!@"`
	FirstName       string `json:"firstName" example:"Ada"`
	LastName        string `json:"lastName" example:"Lovelace"`
	Phone           string `json:"phone,omitempty" example:"+61 412345678"`
}

// LoginRequest is the sign in form.
type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"Abc123!@"`
}

// ProfileUpdateRequest edits the profile. Omitted fields keep their current
// value; the resulting profile is validated as a whole and saved trimmed.
type ProfileUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty" example:"Ada"`
	LastName  *string `json:"lastName,omitempty" example:"Lovelace"`
	Email     *string `json:"email,omitempty" example:"ada@example.com"`
	Phone     *string `json:"phone,omitempty" example:""`
}

// UserResponse is a user as shown on the profile page. It never includes
// the password hash.
type UserResponse struct {
	ID        string    `json:"id" example:"01J9Z3J5Q2W8X4Y6Z7A8B9C0D1"`
	Email     string    `json:"email" example:"ada@example.com"`
	FirstName string    `json:"firstName" example:"Ada"`
	LastName  string    `json:"lastName" example:"Lovelace"`
	Phone     string    `json:"phone" example:""`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================================================================
// Validation Types
// ============================================================================

// ValidateFieldRequest asks for the message of a single field, the way a form
// revalidates on every keystroke.
type ValidateFieldRequest struct {
	// Mode is one of "register", "login" or "profile"
	Mode  string `json:"mode" example:"register"`
	Field string `json:"field" example:"password"`
	Value string `json:"value" example:"abc12345"`

	// Password is the sibling password, used when Field is confirmPassword
	Password string `json:"password,omitempty"`
}

// ValidateFieldResponse carries the message for the field, empty when valid.
type ValidateFieldResponse struct {
	Field string `json:"field" example:"password"`
	Valid bool   `json:"valid" example:"false"`
	Error string `json:"error" example:"Password must contain at least one uppercase letter"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz includes Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
