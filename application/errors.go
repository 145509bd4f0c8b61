package application

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/health-ledger/domain/health"
)

var (
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientStake   = errors.New("insufficient balance for stake")
	ErrInvalidWinner       = errors.New("decider picked a non-competitor")
	ErrBalanceOverflow     = health.ErrBalanceOverflow

	ErrSenderUnknown     = fmt.Errorf("sender: %w", health.ErrUnknownParticipant)
	ErrReceiverUnknown   = fmt.Errorf("receiver: %w", health.ErrUnknownParticipant)
	ErrCompetitorUnknown = fmt.Errorf("competitor: %w", health.ErrUnknownParticipant)
)
