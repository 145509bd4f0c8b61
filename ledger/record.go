package ledger

import "time"

// Record is the export form of a Block, with the timestamp rendered as
// an ISO-8601 string.
type Record struct {
	Index     uint64 `json:"index"`
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Amount    int64  `json:"amount"`
	Message   string `json:"message"`
	Hash      string `json:"hash"`
	PrevHash  string `json:"previous_hash"`
}

// Record converts the block to its export form.
func (b Block) Record() Record {
	return Record{
		Index:     b.Index,
		Timestamp: b.Timestamp.UTC().Format(time.RFC3339Nano),
		Sender:    b.Sender,
		Receiver:  b.Receiver,
		Amount:    b.Amount,
		Message:   b.Message,
		Hash:      b.Hash,
		PrevHash:  b.PrevHash,
	}
}
