package repository

import (
	"context"
	"sync"

	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

// SessionState is the mutable per-cashier POS state: the cart and the
// single active-prescription slot.
type SessionState struct {
	Cart               *models.Cart
	ActivePrescription *models.Prescription
}

// SessionRepository hands out per-user session state and serializes every
// mutation, so each operation runs to completion before the next one for
// the same session starts. A callback that returns an error must leave the
// state untouched; the cart operations already guarantee that.
type SessionRepository interface {
	Update(ctx context.Context, userID int64, fn func(s *SessionState) error) error
	View(ctx context.Context, userID int64, fn func(s *SessionState)) error
	Clear(ctx context.Context, userID int64) error
}

type sessionEntry struct {
	mu    sync.Mutex
	state SessionState
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[int64]*sessionEntry
}

func NewSessionRepo() SessionRepository {
	return &sessionRepository{sessions: make(map[int64]*sessionEntry)}
}

func (r *sessionRepository) entry(userID int64) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[userID]
	if !ok {
		e = &sessionEntry{state: SessionState{Cart: models.NewCart()}}
		r.sessions[userID] = e
	}

	return e
}

func (r *sessionRepository) Update(_ context.Context, userID int64, fn func(s *SessionState) error) error {
	e := r.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(&e.state)
}

func (r *sessionRepository) View(_ context.Context, userID int64, fn func(s *SessionState)) error {
	e := r.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.state)

	return nil
}

func (r *sessionRepository) Clear(_ context.Context, userID int64) error {
	e := r.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = SessionState{Cart: models.NewCart()}

	return nil
}
