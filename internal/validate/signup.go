// Package validate holds the synchronous form rules for account screens.
package validate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAge             = "age"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"

	MinAge            = 13
	MaxAge            = 120
	MinPasswordLength = 8
	MaxPasswordBytes  = 72 // bcrypt input limit
	PhoneDigits       = 10
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// SignUpForm mirrors the signup screen. Age stays a string because it is
// typed free-form.
type SignUpForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Age             string `json:"age"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// FieldErrors maps a field name to its message. A valid form has none.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

// Clear drops the message for a field the user has started editing again.
func (e FieldErrors) Clear(field string) { delete(e, field) }

// Fields lists the failing fields in a stable order.
func (e FieldErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// SignUp checks every field and returns all failures at once.
func SignUp(f SignUpForm) FieldErrors {
	errs := FieldErrors{}
	set := func(field, msg string) {
		if msg != "" {
			errs[field] = msg
		}
	}
	set(FieldName, Name(f.Name))
	set(FieldEmail, Email(f.Email))
	set(FieldPhone, Phone(f.Phone))
	set(FieldAge, Age(f.Age))
	for field, msg := range Passwords(f.Password, f.ConfirmPassword) {
		errs[field] = msg
	}
	return errs
}

func Name(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Name is required"
	}
	return ""
}

func Email(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(v) {
		return "Please enter a valid email"
	}
	return ""
}

func Phone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Phone number is required"
	}
	if len(nonDigits.ReplaceAllString(v, "")) != PhoneDigits {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

func Age(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "Age is required"
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < MinAge || n > MaxAge {
		return "Please enter a valid age (13-120)"
	}
	return ""
}

// Passwords validates a password and its confirmation together. It is
// shared by signup and password reset.
func Passwords(password, confirm string) FieldErrors {
	errs := FieldErrors{}
	switch {
	case password == "":
		errs[FieldPassword] = "Password is required"
	case utf8.RuneCountInString(password) < MinPasswordLength:
		errs[FieldPassword] = "Password must be at least 8 characters"
	case len(password) > MaxPasswordBytes:
		errs[FieldPassword] = "Password is too long"
	}
	switch {
	case confirm == "":
		errs[FieldConfirmPassword] = "Please confirm your password"
	case password != confirm:
		errs[FieldConfirmPassword] = "Passwords do not match"
	}
	return errs
}
