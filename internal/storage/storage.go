// Package storage defines the key-value persistence sink the store writes
// through to, with a file-backed default and a sqlite-backed alternative.
package storage

// DataKey is the well-known key the full folder/prompt collection is stored
// under. The value is a single JSON document.
const DataKey = "promptbox-data"

// Sink is a synchronous key-value store. Get reports whether the key was
// present; Remove of an absent key is not an error.
type Sink interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
