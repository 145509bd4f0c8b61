package health

import (
	"errors"
	"math"
	"testing"
)

func TestRegistry_RegisterDefaultBalance(t *testing.T) {
	r := NewRegistry(0)

	if err := r.Register("Alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bal, ok := r.Balance("Alice")
	if !ok {
		t.Fatal("Alice should be registered")
	}
	if bal != DefaultBalance {
		t.Fatalf("expected balance %d, got %d", DefaultBalance, bal)
	}
}

func TestRegistry_RegisterCustomBalance(t *testing.T) {
	r := NewRegistry(250)
	_ = r.Register("Alice")

	if bal, _ := r.Balance("Alice"); bal != 250 {
		t.Fatalf("expected balance 250, got %d", bal)
	}
	if r.InitialBalance() != 250 {
		t.Fatalf("expected initial balance 250, got %d", r.InitialBalance())
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")
	if _, err := r.ApplyDelta("Alice", -30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register("Alice")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if bal, _ := r.Balance("Alice"); bal != 70 {
		t.Fatalf("duplicate registration should not reset the balance, got %d", bal)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 participant, got %d", r.Len())
	}
}

func TestRegistry_BalanceUnknown(t *testing.T) {
	r := NewRegistry(0)

	if _, ok := r.Balance("Nobody"); ok {
		t.Fatal("unregistered participant should have no balance")
	}
	if r.Contains("Nobody") {
		t.Fatal("unregistered participant should not be contained")
	}
}

func TestRegistry_ApplyDeltaCreditAndDebit(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")

	removed, err := r.ApplyDelta("Alice", 25)
	if err != nil || removed {
		t.Fatalf("credit: removed=%v err=%v", removed, err)
	}
	removed, err = r.ApplyDelta("Alice", -99)
	if err != nil || removed {
		t.Fatalf("debit: removed=%v err=%v", removed, err)
	}

	if bal, _ := r.Balance("Alice"); bal != 26 {
		t.Fatalf("expected balance 26, got %d", bal)
	}
}

func TestRegistry_ApplyDeltaRemovesAtZero(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")

	removed, err := r.ApplyDelta("Alice", -100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Fatal("participant at zero should be removed")
	}
	if r.Contains("Alice") {
		t.Fatal("Alice should no longer be registered")
	}
}

func TestRegistry_ApplyDeltaRemovesBelowZero(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")

	removed, _ := r.ApplyDelta("Alice", -150)
	if !removed || r.Contains("Alice") {
		t.Fatal("participant below zero should be removed")
	}

	// Removal is deletion: the identifier can be registered again.
	if err := r.Register("Alice"); err != nil {
		t.Fatalf("re-registration failed: %v", err)
	}
	if bal, _ := r.Balance("Alice"); bal != DefaultBalance {
		t.Fatalf("expected fresh balance, got %d", bal)
	}
}

func TestRegistry_ApplyDeltaUnknown(t *testing.T) {
	r := NewRegistry(0)

	_, err := r.ApplyDelta("Nobody", 10)
	if !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("expected ErrUnknownParticipant, got %v", err)
	}
	if r.Len() != 0 {
		t.Fatal("unknown delta should not create a participant")
	}
}

func TestRegistry_ApplyAllOrNothing(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")

	_, err := r.Apply(Debit("Alice", 10), Credit("Bob", 10))
	if !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("expected ErrUnknownParticipant, got %v", err)
	}
	if bal, _ := r.Balance("Alice"); bal != 100 {
		t.Fatalf("failed batch should not debit Alice, got %d", bal)
	}
}

func TestRegistry_ApplyNetsSameParticipant(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")

	removed, err := r.Apply(Debit("Alice", 100), Credit("Alice", 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("self movement should not remove anyone, removed %v", removed)
	}
	if bal, _ := r.Balance("Alice"); bal != 100 {
		t.Fatalf("expected balance 100, got %d", bal)
	}
}

func TestRegistry_ApplyReportsRemovedInOrder(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Alice")
	_ = r.Register("Bob")
	_ = r.Register("Charlie")

	removed, err := r.Apply(Debit("Bob", 100), Credit("Charlie", 5), Debit("Alice", 200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 2 || removed[0] != "Bob" || removed[1] != "Alice" {
		t.Fatalf("expected [Bob Alice] removed, got %v", removed)
	}
	if bal, _ := r.Balance("Charlie"); bal != 105 {
		t.Fatalf("expected Charlie at 105, got %d", bal)
	}
}

func TestRegistry_ParticipantsSorted(t *testing.T) {
	r := NewRegistry(0)
	_ = r.Register("Charlie")
	_ = r.Register("Alice")
	_ = r.Register("Bob")

	ps := r.Participants()
	if len(ps) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(ps))
	}
	for i, want := range []string{"Alice", "Bob", "Charlie"} {
		if ps[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, ps[i].ID)
		}
	}

	ps[0].Balance = 1
	if bal, _ := r.Balance("Alice"); bal != 100 {
		t.Fatal("snapshot mutation leaked into the registry")
	}
}

func TestRegistry_ApplyOverflowChangesNothing(t *testing.T) {
	r := NewRegistry(math.MaxInt64)
	_ = r.Register("Alice")
	_ = r.Register("Bob")

	_, err := r.Apply(Debit("Alice", 10), Credit("Bob", 10))
	if !errors.Is(err, ErrBalanceOverflow) {
		t.Fatalf("expected ErrBalanceOverflow, got %v", err)
	}
	if bal, _ := r.Balance("Alice"); bal != math.MaxInt64 {
		t.Fatalf("Alice should not be debited, got %d", bal)
	}
	if bal, ok := r.Balance("Bob"); !ok || bal != math.MaxInt64 {
		t.Fatalf("Bob should be untouched, got %d (present=%v)", bal, ok)
	}
}

func TestRegistry_CanCredit(t *testing.T) {
	r := NewRegistry(math.MaxInt64 - 5)
	_ = r.Register("Alice")

	if !r.CanCredit("Alice", 5) {
		t.Fatal("crediting up to MaxInt64 should be allowed")
	}
	if r.CanCredit("Alice", 6) {
		t.Fatal("crediting past MaxInt64 should not be allowed")
	}
	if r.CanCredit("Nobody", 1) {
		t.Fatal("unknown participant cannot be credited")
	}
}
