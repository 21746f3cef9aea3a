package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goworkshop/internal/logger"
	"goworkshop/internal/validators"
	"goworkshop/models"
)

// mockValidator lets tests script the structural validation outcome.
type mockValidator struct {
	validateFn func(ctx context.Context, v any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, v any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, v, fields...)
	}
	return nil
}

func TestService_Add(t *testing.T) {
	svc := NewService(&mockValidator{}, nil, logger.Nop())

	require.NoError(t, svc.Add(context.Background(), models.NewUser(1, "Ann", "ann@example.com")))

	users := svc.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0].Name)
}

func TestService_Add_ValidationFailure(t *testing.T) {
	wantErr := errors.New("rejected")
	svc := NewService(&mockValidator{
		validateFn: func(context.Context, any, ...string) error { return wantErr },
	}, nil, logger.Nop())

	err := svc.Add(context.Background(), models.NewUser(1, "Ann", "ann@example.com"))

	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, svc.Users())
}

func TestService_RegisterJSON(t *testing.T) {
	svc := NewService(validators.NewUserValidator(), validators.NewUserSchema(), logger.Nop())

	user, err := svc.RegisterJSON(context.Background(), []byte(`{"id":10,"name":"Eve","email":"eve@example.com"}`))

	require.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
	assert.True(t, user.Active)
	assert.Len(t, svc.Users(), 1)
}

func TestService_RegisterJSON_SchemaUnavailable(t *testing.T) {
	svc := NewService(validators.NewUserValidator(), nil, logger.Nop())

	_, err := svc.RegisterJSON(context.Background(), []byte(`{"id":10,"name":"Eve","email":"eve@example.com"}`))

	require.ErrorIs(t, err, validators.ErrSchemaUnavailable)
	assert.Empty(t, svc.Users())
}

func TestService_RegisterJSON_InvalidPayload(t *testing.T) {
	svc := NewService(validators.NewUserValidator(), validators.NewUserSchema(), logger.Nop())

	_, err := svc.RegisterJSON(context.Background(), []byte(`{"id":10,"name":"Eve","email":"bad"}`))

	require.ErrorIs(t, err, validators.ErrInvalidUserPayload)
	assert.Empty(t, svc.Users())
}

func TestService_ActiveAndDedupe(t *testing.T) {
	svc := NewService(&mockValidator{}, nil, logger.Nop())
	ctx := context.Background()

	ann := models.NewUser(1, "Ann", "ann@example.com")
	bob := models.NewUser(2, "Bob", "bob@example.com")
	bob.Active = false
	annDup := models.NewUser(1, "Ann-dup", "ann@dup.com")

	require.NoError(t, svc.Add(ctx, ann))
	require.NoError(t, svc.Add(ctx, bob))
	require.NoError(t, svc.Add(ctx, annDup))

	active := svc.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Ann", active[0].Name)
	assert.Equal(t, "Ann-dup", active[1].Name)

	deduped := svc.Dedupe()
	require.Len(t, deduped, 2)
	assert.Equal(t, "Ann", deduped[0].Name)
	assert.Equal(t, "Bob", deduped[1].Name)
}

func TestService_UsersReturnsCopy(t *testing.T) {
	svc := NewService(&mockValidator{}, nil, logger.Nop())
	require.NoError(t, svc.Add(context.Background(), models.NewUser(1, "Ann", "ann@example.com")))

	users := svc.Users()
	users[0].Name = "mutated"

	assert.Equal(t, "Ann", svc.Users()[0].Name)
}
