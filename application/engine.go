// Package application wires the ledger and the participant registry into
// the health economy.
package application

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/luca-patrignani/health-ledger/domain/contest"
	"github.com/luca-patrignani/health-ledger/domain/health"
	"github.com/luca-patrignani/health-ledger/ledger"
)

// Engine owns a blockchain and a participant registry and keeps them in
// step: every balance change is recorded by exactly one block, and a
// rejected operation changes neither.
type Engine struct {
	mu       sync.Mutex
	chain    *ledger.Blockchain
	registry *health.Registry

	clock          ledger.Clock
	decider        contest.Decider
	logger         *slog.Logger
	initialBalance int64
}

// NewEngine creates an engine with a fresh genesis block and an empty
// registry. Without options it uses the system clock, a crypto/rand coin
// flip for competitions and a starting balance of health.DefaultBalance.
func NewEngine(opts ...engineOption) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = ledger.SystemClock
	}
	if e.decider == nil {
		e.decider = contest.NewCoinFlip()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.chain = ledger.NewBlockchain(e.clock)
	e.registry = health.NewRegistry(e.initialBalance)
	return e
}

// Register adds a participant with the initial balance.
// A duplicate returns health.ErrAlreadyExists and changes nothing.
func (e *Engine) Register(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.registry.Register(id); err != nil {
		e.logger.Info("participant already exists", "participant", id)
		return err
	}
	e.logger.Info("participant added", "participant", id, "balance", e.registry.InitialBalance())
	return nil
}

// Balance returns the balance of id, or false if it is not registered.
func (e *Engine) Balance(id string) (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.registry.Balance(id)
}

// Participants returns the registered participants sorted by identifier.
func (e *Engine) Participants() []health.Participant {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.registry.Participants()
}

// Transfer moves amount health points from sender to receiver and records
// the movement on the chain. The sender is removed from the network if
// the transfer leaves it with no health points.
func (e *Engine) Transfer(sender, receiver string, amount int64, message string) (ledger.Block, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkTransfer(sender, receiver, amount); err != nil {
		e.logger.Debug("transfer rejected", "sender", sender, "receiver", receiver, "amount", amount, "error", err)
		return ledger.Block{}, err
	}

	block, err := e.commit(sender, receiver, amount, message)
	if err != nil {
		return ledger.Block{}, err
	}
	e.logger.Info("health transferred", "sender", sender, "receiver", receiver, "amount", amount, "message", message, "block", block.Index)
	return block, nil
}

func (e *Engine) checkTransfer(sender, receiver string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	senderBalance, ok := e.registry.Balance(sender)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSenderUnknown, sender)
	}
	if !e.registry.Contains(receiver) {
		return fmt.Errorf("%w: %s", ErrReceiverUnknown, receiver)
	}
	if senderBalance < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientBalance, sender, senderBalance, amount)
	}
	if sender != receiver && !e.registry.CanCredit(receiver, amount) {
		return fmt.Errorf("%w: crediting %d to %s", ErrBalanceOverflow, amount, receiver)
	}
	return nil
}

// Compete stakes health points between a and b. The decider picks the
// winner, the loser pays the stake to the winner and the outcome is
// recorded on the chain with the loser as sender.
func (e *Engine) Compete(a, b string, stake int64) (ledger.Block, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkCompetition(a, b, stake); err != nil {
		e.logger.Debug("competition rejected", "competitors", []string{a, b}, "stake", stake, "error", err)
		return ledger.Block{}, err
	}

	winner := e.decider.PickWinner(a, b)
	var loser string
	switch winner {
	case a:
		loser = b
	case b:
		loser = a
	default:
		return ledger.Block{}, fmt.Errorf("%w: %q is neither %q nor %q", ErrInvalidWinner, winner, a, b)
	}

	message := fmt.Sprintf("Competition: %s vs %s, Winner: %s", loser, winner, winner)
	block, err := e.commit(loser, winner, stake, message)
	if err != nil {
		return ledger.Block{}, err
	}
	e.logger.Info("competition settled", "winner", winner, "loser", loser, "stake", stake, "block", block.Index)
	return block, nil
}

func (e *Engine) checkCompetition(a, b string, stake int64) error {
	if stake < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, stake)
	}
	balanceA, okA := e.registry.Balance(a)
	balanceB, okB := e.registry.Balance(b)
	if !okA || !okB {
		return fmt.Errorf("%w: %s vs %s", ErrCompetitorUnknown, a, b)
	}
	if balanceA < stake || balanceB < stake {
		return fmt.Errorf("%w: stake %d, %s has %d, %s has %d", ErrInsufficientStake, stake, a, balanceA, b, balanceB)
	}
	// Either competitor may win, so both must be able to take the stake.
	if a != b && (!e.registry.CanCredit(a, stake) || !e.registry.CanCredit(b, stake)) {
		return fmt.Errorf("%w: stake %d between %s and %s", ErrBalanceOverflow, stake, a, b)
	}
	return nil
}

// commit debits from, credits to and appends the matching block. The
// registry batch is all-or-nothing, so no block is appended if it fails.
func (e *Engine) commit(from, to string, amount int64, message string) (ledger.Block, error) {
	removed, err := e.registry.Apply(health.Debit(from, amount), health.Credit(to, amount))
	if err != nil {
		return ledger.Block{}, err
	}
	block := e.chain.Append(from, to, amount, message)
	for _, id := range removed {
		e.logger.Info("participant removed from the network", "participant", id)
	}
	return block, nil
}

// ValidateLedger reports whether the chain is intact.
func (e *Engine) ValidateLedger() bool {
	return e.chain.IsValid()
}

// VerifyLedger returns the first integrity violation found on the chain.
func (e *Engine) VerifyLedger() error {
	return e.chain.Verify()
}

// ChainLength returns the number of blocks, genesis included.
func (e *Engine) ChainLength() int {
	return e.chain.Len()
}

// Blocks returns a copy of the chain in index order.
func (e *Engine) Blocks() []ledger.Block {
	return e.chain.Blocks()
}

// ExportChain returns the chain in its export form.
func (e *Engine) ExportChain() []ledger.Record {
	return e.chain.Export()
}
