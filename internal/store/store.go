// Package store implements the record store: five named JSON collections
// plus a single session slot, kept under fixed keys in a key-value
// namespace. Every mutation is a whole-collection read-modify-write.
package store

import "context"

// Fixed keys of the persisted collections and the session slot.
const (
	KeyUsers    = "festiva:users"
	KeyOrders   = "festiva:orders"
	KeyFeedback = "festiva:feedback"
	KeyVenues   = "festiva:venues"
	KeyServices = "festiva:services"
	KeySession  = "festiva:session"
)

// KV is the persistence backend for the record store. Get returns nil data
// for keys that were never written. Implementations fail safe on reads:
// an unreachable or corrupt backend reads as absent, never as an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
