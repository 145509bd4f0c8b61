package ledger

import (
	"errors"
	"fmt"
	"sync"
)

// ErrChainIntegrity is wrapped by every error returned from Verify.
var ErrChainIntegrity = errors.New("chain integrity violation")

// Blockchain is an append-only sequence of hash-linked blocks.
// It always contains at least the genesis block.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	clock  Clock
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and "Genesis" as both
// sender and receiver. A nil clock falls back to the system clock.
func NewBlockchain(clock Clock) *Blockchain {
	if clock == nil {
		clock = SystemClock
	}
	bc := &Blockchain{
		blocks: make([]Block, 0, 1),
		clock:  clock,
	}

	genesis := newBlock(0, clock.Now(), GenesisParticipant, GenesisParticipant, 0, GenesisMessage, GenesisHash)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append adds a new block recording the given movement on top of the
// latest block and returns it. No participant validation happens here.
func (bc *Blockchain) Append(sender, receiver string, amount int64, message string) Block {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	block := newBlock(latest.Index+1, bc.clock.Now(), sender, receiver, amount, message, latest.Hash)
	bc.blocks = append(bc.blocks, block)

	return block
}

// Latest returns the most recently added block in the blockchain.
func (bc *Blockchain) Latest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range [0, %d)", index, len(bc.blocks))
	}

	return bc.blocks[index], nil
}

// Blocks returns a copy of the chain in index order.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// Export returns the chain in its export form, in index order.
func (bc *Blockchain) Export() []Record {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Record, len(bc.blocks))
	for i, b := range bc.blocks {
		out[i] = b.Record()
	}
	return out
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
// The first failure found in index order is returned.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("%w: empty blockchain", ErrChainIntegrity)
	}

	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != GenesisHash {
		return fmt.Errorf("%w: invalid genesis block", ErrChainIntegrity)
	}
	if expected := genesis.CalculateHash(); genesis.Hash != expected {
		return fmt.Errorf("%w: genesis block: invalid hash: expected %s, got %s", ErrChainIntegrity, expected, genesis.Hash)
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("%w: block %d: %v", ErrChainIntegrity, i, err)
		}
	}

	return nil
}

// IsValid reports whether Verify finds no integrity violation.
func (bc *Blockchain) IsValid() bool {
	return bc.Verify() == nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// the stored hash against the block's fields, previous hash linkage and index continuity.
func validateBlock(current, previous Block) error {
	expectedHash := current.CalculateHash()
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	return nil
}
