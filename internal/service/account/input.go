package account

import (
	"net/mail"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores anything longer
)

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email    string
	Password string
	Fullname string
	Phone    string
	Address  string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	errs = appendPasswordErrors(errs, "password", i.Password)

	if i.Fullname == "" {
		errs = append(errs, domain.FieldError{Field: "fullname", Message: "required"})
	} else if len(i.Fullname) > 255 {
		errs = append(errs, domain.FieldError{Field: "fullname", Message: "too long"})
	}
	if len(i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	if len(i.Address) > 500 {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds account listing parameters.
type ListInput struct {
	// AccountID restricts the listing to the caller's own account.
	AccountID *uuid.UUID
	// Keyword searches phone, fullname and email. Admin only.
	Keyword string
	domain.PageRequest
}

// UpdateProfileInput holds profile changes. Empty fields keep their value.
type UpdateProfileInput struct {
	AccountID uuid.UUID
	Fullname  string
	Phone     string
	Address   string
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Fullname) > 255 {
		errs = append(errs, domain.FieldError{Field: "fullname", Message: "too long"})
	}
	if len(i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	if len(i.Address) > 500 {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds the reset link token and the new password.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	}
	errs = appendPasswordErrors(errs, "password", i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeRoleInput names the account to toggle and the role the caller saw.
type ChangeRoleInput struct {
	AccountID   uuid.UUID
	CurrentRole domain.Role
}

// Validate validates the role change input.
func (i ChangeRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "accountID", Message: "required"})
	}
	if !i.CurrentRole.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user, admin or master"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > 254 {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func appendPasswordErrors(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
