package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/common"
)

// DefaultResendCooldown is how many ticks must elapse before another
// verification code may be requested.
const DefaultResendCooldown = 30

// RegisterService drives the OTP-gated account-registration flow: code
// issuance with a resend cooldown, local pre-submission checks, and the
// final registration call. The authoritative code-correctness check belongs
// to the collaborator; everything here is client-side convenience.
//
// The service is ephemeral: one instance per registration form session.
type RegisterService struct {
	client   client.Client
	cooldown int           // ticks per cooldown window
	tick     time.Duration // duration of one tick

	mu         sync.Mutex
	codeIssued bool
	remaining  int
	stop       chan struct{}
}

// NewRegisterService builds a verifier with the standard 30-tick cooldown of
// one second per tick.
func NewRegisterService(c client.Client) *RegisterService {
	return NewRegisterServiceWithCooldown(c, DefaultResendCooldown, time.Second)
}

// NewRegisterServiceWithCooldown allows the cooldown length and tick
// duration to be adjusted, mainly for tests.
func NewRegisterServiceWithCooldown(c client.Client, cooldown int, tick time.Duration) *RegisterService {
	return &RegisterService{client: c, cooldown: cooldown, tick: tick}
}

// RequestCode asks the collaborator to send a verification code to email.
//
// An empty email fails with common.ErrorInvalidInput before any network
// call. While the cooldown from a previous issuance is still running the
// call is a silent no-op: the throttle is advisory, the server enforces its
// own. On success the cooldown counter restarts at its full value.
func (s *RegisterService) RequestCode(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return common.ErrorInvalidInput
	}

	s.mu.Lock()
	if s.remaining > 0 {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if _, err := s.client.SendOTP(ctx, email); err != nil {
		return err
	}

	s.mu.Lock()
	s.codeIssued = true
	s.startCooldownLocked()
	s.mu.Unlock()
	return nil
}

// CooldownRemaining reports how many ticks are left before RequestCode is
// re-enabled. Zero means a new code may be requested.
func (s *RegisterService) CooldownRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// CodeIssued reports whether a code was issued during this session.
func (s *RegisterService) CodeIssued() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codeIssued
}

// Submit runs the local pre-submission checks in order: a code must have
// been issued this session (common.ErrNotVerified), supplied by the user
// (common.ErrMissingCode), and the terms accepted
// (common.ErrTermsNotAccepted). It then delegates to the collaborator, which
// is the authority on whether the code is correct.
//
// A successful submission terminates the registration session: the code is
// single-use and no verifier state survives.
func (s *RegisterService) Submit(ctx context.Context, name, email, code, password string, agreed bool) (string, error) {
	s.mu.Lock()
	issued := s.codeIssued
	s.mu.Unlock()

	if !issued {
		return "", common.ErrNotVerified
	}
	if strings.TrimSpace(code) == "" {
		return "", common.ErrMissingCode
	}
	if !agreed {
		return "", common.ErrTermsNotAccepted
	}

	msg, err := s.client.Register(ctx, name, email, code, password)
	if err != nil {
		return "", err
	}

	s.Abandon()
	return msg, nil
}

// Abandon cancels the cooldown countdown and resets the session state. Must
// be called when the registration flow is dropped mid-way so the timer never
// acts on a stale session.
func (s *RegisterService) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopCooldownLocked()
	s.codeIssued = false
	s.remaining = 0
}

// startCooldownLocked resets the counter and spawns the countdown goroutine.
// The goroutine self-cancels when the counter reaches zero. Caller holds mu.
func (s *RegisterService) startCooldownLocked() {
	s.stopCooldownLocked()
	s.remaining = s.cooldown
	stop := make(chan struct{})
	s.stop = stop

	go func() {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				if s.remaining > 0 {
					s.remaining--
				}
				done := s.remaining == 0
				s.mu.Unlock()
				if done {
					return
				}
			case <-stop:
				return
			}
		}
	}()
}

func (s *RegisterService) stopCooldownLocked() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}
