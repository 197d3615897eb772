// Package store holds the small amount of durable client-side state: the
// session token and the theme preference. It mirrors the localStorage
// contract of the original dashboard — string keys, string values, and
// idempotent clears — behind an injectable interface so nothing reaches for
// ambient global state.
package store

// Well-known keys. No other durable client-side state exists.
const (
	AuthTokenKey = "auth_token"
	ThemeKey     = "theme"
)

// Store is a process-wide key/value store. Clear is idempotent; any component
// may call it.
type Store interface {
	Get(key string) string
	Set(key, value string)
	Clear(key string)
}
