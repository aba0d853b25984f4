package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// sessionKey is the single slot holding the serialized session record.
// At most one session is active per device, so the key is fixed.
const sessionKey = "session:user"

// SessionStore is the durable side of the session: one key-value slot
// holding the JSON-serialized user, written on login, deleted on logout,
// read on hydration.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, user *domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, b, 0).Err(); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Load reads the persisted record. An absent slot yields (nil, nil); a
// malformed record is cleared and also yields (nil, nil), so a corrupt
// write can never wedge the session.
func (s *SessionStore) Load(ctx context.Context) (*domain.User, error) {
	b, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session record: %w", err)
	}

	user, err := decodeSessionRecord(b)
	if err != nil {
		_ = s.client.Del(ctx, sessionKey).Err()
		return nil, nil
	}
	return user, nil
}

func (s *SessionStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

// decodeSessionRecord parses a stored record, rejecting payloads that parse
// but do not describe a usable user.
func decodeSessionRecord(b []byte) (*domain.User, error) {
	var user domain.User
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	if user.ID == "" || user.Email == "" {
		return nil, errors.New("session record missing identity")
	}
	user.Role = domain.ParseRole(string(user.Role))
	return &user, nil
}
