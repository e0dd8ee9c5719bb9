package conversation

import (
	"sync"
	"time"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
)

// State is the intake step a session is waiting on. There is no idle
// state: a user with no session is idle.
type State int

const (
	StateAwaitOrgName State = iota
	StateAwaitRegion
	StateAwaitDiscount
	StateAwaitBudget
	StateAwaitProduct
	StateAwaitQuantity
	StateAwaitPrintPosition
	StateAwaitColorOption
)

func (s State) String() string {
	switch s {
	case StateAwaitOrgName:
		return "await_org_name"
	case StateAwaitRegion:
		return "await_region"
	case StateAwaitDiscount:
		return "await_discount"
	case StateAwaitBudget:
		return "await_budget"
	case StateAwaitProduct:
		return "await_product"
	case StateAwaitQuantity:
		return "await_quantity"
	case StateAwaitPrintPosition:
		return "await_print_position"
	case StateAwaitColorOption:
		return "await_color_option"
	default:
		return "unknown"
	}
}

// Session is one user's in-progress quote intake.
type Session struct {
	State            State
	OrgName          string
	Region           string
	DiscountEligible bool
	Budget           string
	Product          string
	Quantity         int
	PrintPosition    pricing.PrintPosition
	ColorOption      pricing.ColorOption
	LastActivity     time.Time
}

// Store holds at most one session per user id. All access goes through
// the store lock so a lookup-validate-mutate-delete sequence for one
// user is atomic; the map itself never escapes.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Begin creates a fresh session for the user, overwriting any existing
// one, and returns its starting state.
func (st *Store) Begin(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[userID] = &Session{
		State:        StateAwaitOrgName,
		LastActivity: st.now(),
	}
}

// Do runs fn under the store lock with the user's session, or with nil
// when the user has no intake in progress. fn returning true deletes
// the session before the lock is released. Reports whether a session
// existed.
func (st *Store) Do(userID string, fn func(s *Session) bool) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		fn(nil)
		return false
	}
	if fn(s) {
		delete(st.sessions, userID)
	}
	return true
}

// Delete drops the user's session if present. Idempotent.
func (st *Store) Delete(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// SweepIdle deletes sessions with no activity for longer than maxAge
// and returns how many were dropped. Abandoned intakes would otherwise
// live forever.
func (st *Store) SweepIdle(maxAge time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := st.now().Add(-maxAge)
	n := 0
	for id, s := range st.sessions {
		if s.LastActivity.Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}
