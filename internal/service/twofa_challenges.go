package service

import (
	"sync"
	"time"
)

// twoFAChallenge is one pending two-factor login: the password stage
// passed, the code has not been verified yet. Challenges are ephemeral and
// live only in process memory; a restart simply sends the user back to
// password login.
type twoFAChallenge struct {
	userID    int64
	ip        string
	userAgent string
	attempts  int
	expiresAt time.Time
}

// challengeRegistry holds the pending challenges keyed by account id. One
// account has at most one pending challenge: a new password login replaces
// the previous challenge and resets its attempt budget.
type challengeRegistry struct {
	mu          sync.Mutex
	challenges  map[int64]*twoFAChallenge
	ttl         time.Duration
	maxAttempts int
}

func newChallengeRegistry(ttl time.Duration, maxAttempts int) *challengeRegistry {
	return &challengeRegistry{
		challenges:  make(map[int64]*twoFAChallenge),
		ttl:         ttl,
		maxAttempts: maxAttempts,
	}
}

// open creates (or replaces) the pending challenge for the account.
func (r *challengeRegistry) open(userID int64, ip, userAgent string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.challenges[userID] = &twoFAChallenge{
		userID:    userID,
		ip:        ip,
		userAgent: userAgent,
		expiresAt: time.Now().Add(r.ttl),
	}
}

// take charges one verification attempt against the pending challenge.
// Returns the challenge snapshot and:
//   - ok=false when no live challenge exists (never opened or expired);
//   - locked=true when the attempt budget is exhausted, in which case the
//     challenge is removed and the user must pass the password stage again.
func (r *challengeRegistry) take(userID int64) (ch twoFAChallenge, ok, locked bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending, exists := r.challenges[userID]
	if !exists || time.Now().After(pending.expiresAt) {
		delete(r.challenges, userID)
		return twoFAChallenge{}, false, false
	}

	pending.attempts++
	if pending.attempts > r.maxAttempts {
		delete(r.challenges, userID)
		return *pending, true, true
	}

	return *pending, true, false
}

// resolve removes the challenge after a successful verification.
func (r *challengeRegistry) resolve(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.challenges, userID)
}
