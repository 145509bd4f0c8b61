// Package contest decides the winner of a stake-based competition between
// two participants.
//
// The economy engine only depends on the Decider interface. CoinFlip is the
// default uniform choice; Showdown settles the competition with a heads-up
// Texas Hold'em hand, evaluated with 7-card hand ranking. Tests use
// DeciderFunc or Fixed for deterministic outcomes.
package contest
