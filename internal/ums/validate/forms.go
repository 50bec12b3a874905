package validate

import (
	"maps"
	"slices"
	"strings"
)

// Errors maps field names to messages. A missing or empty entry means the
// field is valid.
type Errors map[string]string

// HasErrors reports whether any field carries a message.
func (e Errors) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Get returns the message for field, empty when valid.
func (e Errors) Get(field string) string { return e[field] }

// Update returns a copy of e with only field's message replaced. This is
// what a keystroke does: other fields keep whatever they showed before.
func (e Errors) Update(field, msg string) Errors {
	out := make(Errors, len(e)+1)
	maps.Copy(out, e)
	out[field] = msg
	return out
}

// Invalid returns the names of fields that carry a message, sorted.
func (e Errors) Invalid() []string {
	var out []string
	for field, msg := range e {
		if msg != "" {
			out = append(out, field)
		}
	}
	slices.Sort(out)
	return out
}

// Form is the common shape of the account forms, letting UIs drive any of
// them field by field.
type Form interface {
	// Fields lists the form's fields in display order.
	Fields() []string
	Get(field string) string
	Set(field, value string)
	Context() Context
}

// Keystroke stores value into field and revalidates only that field.
func Keystroke(f Form, errs Errors, field, value string) Errors {
	f.Set(field, value)
	return errs.Update(field, Field(field, value, f.Context()))
}

// Submit revalidates every field of f. Submission must be blocked when the
// result HasErrors.
func Submit(f Form) Errors {
	ctx := f.Context()
	errs := make(Errors, len(f.Fields()))
	for _, field := range f.Fields() {
		errs[field] = Field(field, f.Get(field), ctx)
	}
	return errs
}

// RegisterForm backs the sign up form.
type RegisterForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
}

var registerFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword}

func (f *RegisterForm) Fields() []string { return registerFields }

func (f *RegisterForm) Context() Context {
	return Context{Mode: ModeRegister, Password: f.Password}
}

func (f *RegisterForm) Get(field string) string {
	if p := f.field(field); p != nil {
		return *p
	}
	return ""
}

func (f *RegisterForm) Set(field, value string) {
	if p := f.field(field); p != nil {
		*p = value
	}
}

func (f *RegisterForm) field(name string) *string {
	switch name {
	case FieldEmail:
		return &f.Email
	case FieldPassword:
		return &f.Password
	case FieldConfirmPassword:
		return &f.ConfirmPassword
	case FieldFirstName:
		return &f.FirstName
	case FieldLastName:
		return &f.LastName
	case FieldPhone:
		return &f.Phone
	}
	return nil
}

// Validate is Submit for the sign up form.
func (f *RegisterForm) Validate() Errors { return Submit(f) }

// LoginForm backs the sign in form.
type LoginForm struct {
	Email    string
	Password string
}

var loginFields = []string{FieldEmail, FieldPassword}

func (f *LoginForm) Fields() []string { return loginFields }

func (f *LoginForm) Context() Context { return Context{Mode: ModeLogin} }

func (f *LoginForm) Get(field string) string {
	switch field {
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	}
	return ""
}

func (f *LoginForm) Set(field, value string) {
	switch field {
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	}
}

func (f *LoginForm) Validate() Errors { return Submit(f) }

// ProfileForm backs the profile edit form.
type ProfileForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

var profileFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone}

func (f *ProfileForm) Fields() []string { return profileFields }

func (f *ProfileForm) Context() Context { return Context{Mode: ModeProfile} }

func (f *ProfileForm) Get(field string) string {
	switch field {
	case FieldFirstName:
		return f.FirstName
	case FieldLastName:
		return f.LastName
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	}
	return ""
}

func (f *ProfileForm) Set(field, value string) {
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	}
}

func (f *ProfileForm) Validate() Errors { return Submit(f) }

// Trimmed returns the form with surrounding whitespace removed from every
// value. Profile edits are saved trimmed.
func (f *ProfileForm) Trimmed() ProfileForm {
	return ProfileForm{
		FirstName: strings.TrimFunc(f.FirstName, isSpace),
		LastName:  strings.TrimFunc(f.LastName, isSpace),
		Email:     strings.TrimFunc(f.Email, isSpace),
		Phone:     strings.TrimFunc(f.Phone, isSpace),
	}
}
