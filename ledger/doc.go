// Package ledger implements an append-only, hash-linked ledger of
// health-point movements between participants.
//
// # Core Components
//
// Blockchain: An append-only log of balance changes with cryptographic
// hash chaining for tamper detection.
//
// Block: A single balance change (sender, receiver, amount and a free-text
// message) together with its position, timestamp and link to the previous
// block.
//
// # Security Properties
//
// The blockchain provides:
//   - Immutability: blocks are handed out by value and never rewritten
//   - Verifiability: the whole chain can be re-hashed at any time
//   - Tamper detection: any modification breaks the hash chain
//
// # Usage
//
// Create a blockchain with a clock, append blocks as balance changes are
// committed, and call Verify (or IsValid) to check the chain is intact.
package ledger
