package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// User is the authenticated school staff member, as returned by the API.
// It is created by registration and read-only afterwards.
type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Email       string    `json:"email"`
	Role        string    `json:"cargo"`
	Institution string    `json:"escola"`
	CreatedAt   Timestamp `json:"data_criacao"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	var errs []FieldError
	if c.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	}
	if c.Password == "" {
		errs = append(errs, FieldError{Field: "senha", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Registration is the sign-up request body.
type Registration struct {
	Name        string `json:"nome"`
	Email       string `json:"email"`
	Password    string `json:"senha"`
	Role        string `json:"cargo"`
	Institution string `json:"escola"`
}

// Validate checks that every field is present and the email is well formed.
func (r Registration) Validate() error {
	var errs []FieldError
	for _, f := range []struct{ name, value string }{
		{"nome", r.Name},
		{"email", r.Email},
		{"senha", r.Password},
		{"cargo", r.Role},
		{"escola", r.Institution},
	} {
		if f.value == "" {
			errs = append(errs, FieldError{Field: f.name, Message: "required"})
		}
	}
	if r.Email != "" && validate.Var(r.Email, "email") != nil {
		errs = append(errs, FieldError{Field: "email", Message: "invalid address"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// AuthResult is returned by login and registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"usuario"`
}
