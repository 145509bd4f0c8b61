// Package health keeps the health-point balances of the participants of
// the network.
//
// A participant exists only while its balance is strictly positive: the
// first debit that brings it to zero or below removes it from the
// Registry. Removal is deletion, no tombstone is kept, so the same
// identifier can be registered again later with a fresh balance.
package health
