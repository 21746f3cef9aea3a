package validators

import (
	"context"
	"fmt"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"

	"goworkshop/models"
)

// UserPayload is the wire shape the schema facility accepts. It is kept
// separate from models.User so the wire contract can drift without touching
// the internal record.
type UserPayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// UserSchema validates raw JSON user payloads against a goskema schema and
// converts the validated result into the internal record shape.
//
// It is always consumed as an injected collaborator. Services must check
// for a nil *UserSchema and surface ErrSchemaUnavailable instead of calling
// through it; availability is a configuration state.
type UserSchema struct {
	schema goskema.Schema[UserPayload]
}

// NewUserSchema builds the user payload schema: id, name and email are
// required, active defaults to true, unknown keys are rejected, and the
// email must have the exactly-one-'@' shape.
func NewUserSchema() *UserSchema {
	schema := g.ObjectOf[UserPayload]().
		Field("id", g.IntOf[int]()).
		Field("name", g.StringOf[string]()).
		Field("email", g.StringOf[string]()).
		Field("active", g.BoolOf[bool]()).Default(true).
		Require("id", "name", "email").
		UnknownStrict().
		Refine("email shape", func(_ context.Context, m map[string]any) error {
			email, _ := m["email"].(string)
			return checkEmailShape(email)
		}).
		MustBind()

	return &UserSchema{schema: schema}
}

// ParseUser validates raw JSON and returns the converted internal record.
// Every validation failure wraps ErrInvalidUserPayload with the underlying
// schema issues.
func (s *UserSchema) ParseUser(ctx context.Context, raw []byte) (models.User, error) {
	payload, err := goskema.ParseFrom(ctx, s.schema, goskema.JSONBytes(raw))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidUserPayload, err)
	}

	return models.User{
		ID:     int64(payload.ID),
		Name:   payload.Name,
		Email:  payload.Email,
		Active: payload.Active,
	}, nil
}
