package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// GenesisHash is the previous hash stored in the genesis block.
	GenesisHash = "0"
	// GenesisParticipant is the sender and receiver of the genesis block.
	GenesisParticipant = "Genesis"
	// GenesisMessage is the message of the genesis block.
	GenesisMessage = "Genesis Block"
)

// Block records a single health-point movement in the chain.
type Block struct {
	Index     uint64    `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Amount    int64     `json:"amount"` // may be negative for forced debits
	Message   string    `json:"message"`
	PrevHash  string    `json:"previous_hash"`
	Hash      string    `json:"hash"`
}

func newBlock(index uint64, ts time.Time, sender, receiver string, amount int64, message, prevHash string) Block {
	b := Block{
		Index:     index,
		Timestamp: ts,
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Message:   message,
		PrevHash:  prevHash,
	}
	b.Hash = b.CalculateHash()
	return b
}

// CalculateHash recomputes the hash of the block from its stored fields.
func (b Block) CalculateHash() string {
	return CalculateHash(b.Index, b.Timestamp, b.Sender, b.Receiver, b.Amount, b.Message, b.PrevHash)
}

// CalculateHash computes the SHA256 hash of a block's fields, hex encoded.
// The timestamp is serialized in UTC with nanosecond precision and the
// string fields are quoted so that field boundaries cannot shift.
func CalculateHash(index uint64, ts time.Time, sender, receiver string, amount int64, message, prevHash string) string {
	data := fmt.Sprintf("%d%s%q%q%d%q%q",
		index,
		ts.UTC().Format(time.RFC3339Nano),
		sender,
		receiver,
		amount,
		message,
		prevHash,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
