package health

// DefaultBalance is the balance given to newly registered participants.
const DefaultBalance int64 = 100

// Participant is an identified actor of the network. The identifier is
// an opaque key (typically a public key) and is never verified.
type Participant struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"`
}

// Delta is a signed balance change for a single participant.
type Delta struct {
	ID     string
	Amount int64
}

// Debit returns a Delta withdrawing amount from id.
func Debit(id string, amount int64) Delta {
	return Delta{ID: id, Amount: -amount}
}

// Credit returns a Delta adding amount to id.
func Credit(id string, amount int64) Delta {
	return Delta{ID: id, Amount: amount}
}
