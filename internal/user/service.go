// Package user owns the profile aggregate: identity fields, the address
// book and the guest-checkout flag. Sign-in is a mock that accepts any
// credentials after a simulated network delay.
package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

type Service struct {
	mu    sync.Mutex
	state domain.UserState
	sink  notify.Sink
	subs  []func(domain.UserState)
	delay time.Duration
}

func New(sink notify.Sink, loginDelay time.Duration) *Service {
	return &Service{sink: sink, delay: loginDelay}
}

// Subscribe registers fn to run after every state change with a snapshot.
func (s *Service) Subscribe(fn func(domain.UserState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login signs the user in after the simulated delay. Any credentials are
// accepted; there is no real authentication.
func (s *Service) Login(ctx context.Context, name, email, phone string) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	s.mu.Lock()
	s.state.Profile.Name = name
	s.state.Profile.Email = email
	s.state.Profile.Phone = phone
	s.state.Profile.IsLoggedIn = true
	s.state.IsGuestCheckout = false
	s.publish()
	s.mu.Unlock()
	s.sink.Push(notify.Toast{
		Title:       "Welcome back!",
		Description: "You have successfully signed in",
		Severity:    notify.SeverityDefault,
	})
	return nil
}

// Logout resets the profile to its empty state.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.UserState{}
	s.publish()
}

type UpdateProfileInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Gender      *string
	DateOfBirth *string
}

// UpdateProfile applies the non-nil fields.
func (s *Service) UpdateProfile(in UpdateProfileInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.Name != nil {
		s.state.Profile.Name = *in.Name
	}
	if in.Email != nil {
		s.state.Profile.Email = *in.Email
	}
	if in.Phone != nil {
		s.state.Profile.Phone = *in.Phone
	}
	if in.Gender != nil {
		s.state.Profile.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		s.state.Profile.DateOfBirth = *in.DateOfBirth
	}
	s.publish()
}

// AddAddress appends the address, minting an id when absent. Marking it
// default clears the flag on every other address.
func (s *Service) AddAddress(a domain.Address) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.IsDefault {
		for i := range s.state.Profile.Addresses {
			s.state.Profile.Addresses[i].IsDefault = false
		}
	}
	s.state.Profile.Addresses = append(s.state.Profile.Addresses, a)
	s.publish()
	return a.ID
}

// UpdateAddress replaces the address with the matching id.
func (s *Service) UpdateAddress(a domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, addr := range s.state.Profile.Addresses {
		if addr.ID == a.ID {
			s.state.Profile.Addresses[i] = a
			s.publish()
			return nil
		}
	}
	return domain.ErrNotFound
}

// RemoveAddress deletes the address; absent ids are a no-op.
func (s *Service) RemoveAddress(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, addr := range s.state.Profile.Addresses {
		if addr.ID == id {
			s.state.Profile.Addresses = append(s.state.Profile.Addresses[:i], s.state.Profile.Addresses[i+1:]...)
			s.publish()
			return
		}
	}
}

// SetDefaultAddress makes exactly one address the default.
func (s *Service) SetDefaultAddress(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Profile.Addresses {
		s.state.Profile.Addresses[i].IsDefault = s.state.Profile.Addresses[i].ID == id
	}
	s.publish()
}

func (s *Service) SetGuestCheckout(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsGuestCheckout = v
	s.publish()
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() domain.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore replaces the whole aggregate, used when loading persisted state.
func (s *Service) Restore(st domain.UserState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	s.state.Profile.Addresses = append([]domain.Address(nil), st.Profile.Addresses...)
	s.publish()
}

func (s *Service) snapshotLocked() domain.UserState {
	out := s.state
	out.Profile.Addresses = append([]domain.Address(nil), s.state.Profile.Addresses...)
	return out
}

func (s *Service) publish() {
	snap := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snap)
	}
}
