package health

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrAlreadyExists      = errors.New("participant already exists")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrBalanceOverflow    = errors.New("balance overflow")
)

// Registry maps participant identifiers to their balances.
// It is not safe for concurrent use; callers serialize access.
type Registry struct {
	initial      int64
	participants map[string]*Participant
}

// NewRegistry creates an empty registry. Participants start with
// initialBalance health points, or DefaultBalance when it is not positive.
func NewRegistry(initialBalance int64) *Registry {
	if initialBalance <= 0 {
		initialBalance = DefaultBalance
	}
	return &Registry{
		initial:      initialBalance,
		participants: make(map[string]*Participant),
	}
}

// InitialBalance returns the balance given to new participants.
func (r *Registry) InitialBalance() int64 {
	return r.initial
}

// Register adds a participant with the initial balance. Registering an
// existing participant returns ErrAlreadyExists and changes nothing.
func (r *Registry) Register(id string) error {
	if _, ok := r.participants[id]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, id)
	}
	r.participants[id] = &Participant{ID: id, Balance: r.initial}
	return nil
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.participants[id]
	return ok
}

// Balance returns the balance of id, or false if it is not registered.
func (r *Registry) Balance(id string) (int64, bool) {
	p, ok := r.participants[id]
	if !ok {
		return 0, false
	}
	return p.Balance, true
}

// Len returns the number of registered participants.
func (r *Registry) Len() int {
	return len(r.participants)
}

// Participants returns a snapshot of the registry sorted by identifier.
func (r *Registry) Participants() []Participant {
	out := make([]Participant, 0, len(r.participants))
	for _, p := range r.participants {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// ApplyDelta adds delta to the balance of id. If the resulting balance is
// zero or below the participant is removed and removed is true.
func (r *Registry) ApplyDelta(id string, delta int64) (removed bool, err error) {
	gone, err := r.Apply(Delta{ID: id, Amount: delta})
	if err != nil {
		return false, err
	}
	return len(gone) > 0, nil
}

// Apply applies a batch of deltas as one unit. Every identifier is checked
// before anything changes; if one is unknown the registry is left untouched.
// Deltas for the same identifier are netted, then participants whose
// balance ended at zero or below are removed. The removed identifiers are
// returned in the order they first appear in deltas. A batch that would
// push a balance past the int64 range returns ErrBalanceOverflow and
// changes nothing.
func (r *Registry) Apply(deltas ...Delta) ([]string, error) {
	for _, d := range deltas {
		if _, ok := r.participants[d.ID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, d.ID)
		}
	}

	var order []string
	net := make(map[string]int64, len(deltas))
	for _, d := range deltas {
		if _, seen := net[d.ID]; !seen {
			order = append(order, d.ID)
		}
		sum, ok := addInt64(net[d.ID], d.Amount)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBalanceOverflow, d.ID)
		}
		net[d.ID] = sum
	}

	balances := make(map[string]int64, len(order))
	for _, id := range order {
		b, ok := addInt64(r.participants[id].Balance, net[id])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBalanceOverflow, id)
		}
		balances[id] = b
	}

	var removed []string
	for _, id := range order {
		p := r.participants[id]
		p.Balance = balances[id]
		if p.Balance <= 0 {
			delete(r.participants, id)
			removed = append(removed, id)
		}
	}
	return removed, nil
}

// CanCredit reports whether amount can be added to the balance of id
// without leaving the int64 range. Unknown identifiers report false.
func (r *Registry) CanCredit(id string, amount int64) bool {
	p, ok := r.participants[id]
	if !ok {
		return false
	}
	_, ok = addInt64(p.Balance, amount)
	return ok
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}
