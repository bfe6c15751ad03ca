// internal/membership/implementation.go
package membership

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"biblioteca/internal/notify"
)

var (
	ErrDuplicateID = errors.New("member id already registered")
	ErrNotFound    = errors.New("member not found")
	ErrBadLogin    = errors.New("authentication failed")
)

// service implements the Service interface with an in-memory collection.
type service struct {
	mu          sync.Mutex
	users       []*User
	credentials map[int]*Credential
	notifier    notify.Notifier
	jwtSecret   []byte
}

// NewService creates a new membership service instance. The notifier receives
// a welcome message for every successful registration.
func NewService(notifier notify.Notifier, jwtSecret []byte) Service {
	return &service{
		credentials: make(map[int]*Credential),
		notifier:    notifier,
		jwtSecret:   jwtSecret,
	}
}

// Register stores a new member. IDs are unique across kinds. A non-empty
// password attaches a staff credential; the stored user is immutable after
// this call.
func (s *service) Register(ctx context.Context, user User, password string) (*User, error) {
	s.mu.Lock()

	for _, u := range s.users {
		if u.ID == user.ID {
			s.mu.Unlock()
			return nil, fmt.Errorf("register member %d: %w", user.ID, ErrDuplicateID)
		}
	}

	if user.Kind == "" {
		user.Kind = KindRegular
	}

	stored := user
	if password != "" {
		hash, salt, err := hashPassword(password)
		if err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		s.credentials[stored.ID] = &Credential{
			UserID:       stored.ID,
			PasswordHash: hash,
			Salt:         salt,
		}
	}
	s.users = append(s.users, &stored)
	s.mu.Unlock()

	s.notifier.Notify(
		stored.Name,
		"Welcome to the library",
		fmt.Sprintf("Hello %s, your membership (id %d) is now active.", stored.Name, stored.ID),
	)

	return &stored, nil
}

// FindByID retrieves a member by id, whatever their kind.
func (s *service) FindByID(ctx context.Context, id int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("member %d: %w", id, ErrNotFound)
}

// ListAll returns every member in insertion order.
func (s *service) ListAll(ctx context.Context) ([]*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// Authenticate verifies a member's credential and returns a signed token.
func (s *service) Authenticate(ctx context.Context, id int, password string) (string, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadLogin, err)
	}

	s.mu.Lock()
	cred, ok := s.credentials[id]
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: member %d has no credential", ErrBadLogin, id)
	}

	match, err := verifyPassword(password, cred.Salt, cred.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadLogin, err)
	}
	if !match {
		return "", fmt.Errorf("%w: invalid credentials", ErrBadLogin)
	}

	return signToken(s.jwtSecret, user)
}

// VerifyToken parses and validates a token issued by Authenticate.
func (s *service) VerifyToken(token string) (*Claims, error) {
	return parseToken(s.jwtSecret, token)
}
