package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goworkshop/models"
)

func TestUserValidator_Validate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{
			name: "valid user",
			user: models.NewUser(1, "Ann", "ann@example.com"),
		},
		{
			name:    "zero id",
			user:    models.NewUser(0, "Ann", "ann@example.com"),
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "blank name",
			user:    models.NewUser(1, "   ", "ann@example.com"),
			wantErr: ErrEmptyName,
		},
		{
			name:    "no at sign",
			user:    models.NewUser(1, "Ann", "not-an-email"),
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "two at signs",
			user:    models.NewUser(1, "Ann", "a@b@c.org"),
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "empty domain",
			user:    models.NewUser(1, "Ann", "ann@"),
			wantErr: ErrInvalidEmail,
		},
		{
			name:   "scoped to email skips bad id",
			user:   models.NewUser(0, "", "ann@example.com"),
			fields: []string{FieldEmail},
		},
		{
			name:    "unknown field",
			user:    models.NewUser(1, "Ann", "ann@example.com"),
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserValidator_PointerInput(t *testing.T) {
	v := NewUserValidator()
	u := models.NewUser(2, "Bob", "bob@example.com")

	assert.NoError(t, v.Validate(context.Background(), &u))
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), 42)

	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserSchema_ParseUser(t *testing.T) {
	s := NewUserSchema()
	ctx := context.Background()

	got, err := s.ParseUser(ctx, []byte(`{"id":10,"name":"Eve","email":"eve@example.com"}`))

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "Eve", got.Name)
	assert.Equal(t, "eve@example.com", got.Email)
	assert.True(t, got.Active, "active must default to true when omitted")
	assert.Equal(t, "example.com", got.Domain())
}

func TestUserSchema_ParseUser_ExplicitInactive(t *testing.T) {
	s := NewUserSchema()

	got, err := s.ParseUser(context.Background(), []byte(`{"id":11,"name":"Frank","email":"frank@example.com","active":false}`))

	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUserSchema_ParseUser_Rejections(t *testing.T) {
	s := NewUserSchema()
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed email", raw: `{"id":1,"name":"Ann","email":"not-an-email"}`},
		{name: "missing email", raw: `{"id":1,"name":"Ann"}`},
		{name: "missing id", raw: `{"name":"Ann","email":"ann@example.com"}`},
		{name: "unknown key", raw: `{"id":1,"name":"Ann","email":"ann@example.com","extra":true}`},
		{name: "not json", raw: `{"id":`},
		{name: "wrong id type", raw: `{"id":"one","name":"Ann","email":"ann@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ParseUser(ctx, []byte(tt.raw))
			require.ErrorIs(t, err, ErrInvalidUserPayload)
		})
	}
}
