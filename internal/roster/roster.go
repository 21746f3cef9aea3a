// Package roster keeps the in-memory user list used by the record
// exercises and funnels every mutation through validation.
package roster

import (
	"context"
	"fmt"

	"goworkshop/internal/collections"
	"goworkshop/internal/logger"
	"goworkshop/internal/validators"
	"goworkshop/models"
)

// Service owns a user list. Adds are checked by the structural validator;
// raw JSON registration additionally goes through the external schema
// facility, which may be absent.
//
// The service is single-threaded by design, matching the sequential demo
// flow; it is not safe for concurrent use.
type Service struct {
	users     []models.User
	validator validators.Validator
	schema    *validators.UserSchema
	log       *logger.Logger
}

// NewService constructs a roster. validator must be non-nil; schema is the
// optional external facility and may be nil, in which case RegisterJSON
// reports validators.ErrSchemaUnavailable.
func NewService(validator validators.Validator, schema *validators.UserSchema, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}

	return &Service{
		validator: validator,
		schema:    schema,
		log:       log,
	}
}

// Add validates user and appends it to the roster.
// Duplicate IDs are accepted here; Dedupe resolves them on read.
func (s *Service) Add(ctx context.Context, user models.User) error {
	if err := s.validator.Validate(ctx, user); err != nil {
		return fmt.Errorf("validate user before add: %w", err)
	}

	s.users = append(s.users, user)
	s.log.Debug().Int64("user_id", user.ID).Msg("user added to roster")

	return nil
}

// RegisterJSON validates a raw JSON payload through the schema facility,
// converts it to the internal record and appends it to the roster.
func (s *Service) RegisterJSON(ctx context.Context, raw []byte) (models.User, error) {
	if s.schema == nil {
		return models.User{}, fmt.Errorf("register user: %w", validators.ErrSchemaUnavailable)
	}

	user, err := s.schema.ParseUser(ctx, raw)
	if err != nil {
		return models.User{}, fmt.Errorf("register user: %w", err)
	}

	s.users = append(s.users, user)
	s.log.Debug().Int64("user_id", user.ID).Msg("user registered from payload")

	return user, nil
}

// Users returns a copy of the roster in insertion order.
func (s *Service) Users() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Active returns the active users in insertion order.
func (s *Service) Active() []models.User {
	return collections.ActiveUsers(s.users)
}

// Dedupe returns the roster with duplicate IDs dropped, first occurrence
// kept.
func (s *Service) Dedupe() []models.User {
	return collections.DedupeByID(s.users)
}
