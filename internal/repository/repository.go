package repository

import "errors"

// ErrCounterUnavailable means the counter record is missing or unreadable.
// Callers treat this as an uninitialized store and reseed with 1.
var ErrCounterUnavailable = errors.New("counter record unavailable")

// CounterRepository defines current-number persistence.
// Both operations are whole-value read/replace.
type CounterRepository interface {
	Get() (int, error)
	Set(n int) error
}

// PhotoRepository defines the numbered photo archive
type PhotoRepository interface {
	Put(number int, data []byte) error
	Exists(number int) bool
	ListAll() ([]int, error)
	Path(number int) string
}
