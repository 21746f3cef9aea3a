package validators

import (
	"context"
	"fmt"
	"strings"

	"goworkshop/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

// UserValidator implements the Validator interface for models.User,
// accepting both value and pointer inputs. Without field arguments every
// rule is applied; with field arguments only the named ones run.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches to the user rules for supported input types.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if user.ID <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidUserID, user.ID)
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if err := checkEmailShape(user.Email); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

// checkEmailShape enforces the workshop's minimal address rule: exactly one
// '@' with a non-empty local part and domain.
func checkEmailShape(email string) error {
	if strings.Count(email, "@") != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	at := strings.Index(email, "@")
	if at == 0 || at == len(email)-1 {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return nil
}
