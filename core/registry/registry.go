package registry

import "sync"

// Registry is a thread-safe key-value store with per-key locking.
// Extension points (cmd, cron, api) collect registrations under a key
// during init and lock the key once applied; late registration panics
// at the call site, not here.
type Registry struct {
	values sync.Map
	locked sync.Map
}

// GlobalRegistry is the process-wide registry instance.
var GlobalRegistry = New()

func New() *Registry {
	return &Registry{}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	return r.values.Load(key)
}

// SetGlobal stores a value under key. No-op protection is the caller's
// job via IsLocked.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.values.Store(key, value)
}

// Lock marks a key immutable. Registrars must check IsLocked before writing.
func (r *Registry) Lock(key string) {
	r.locked.Store(key, true)
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	v, ok := r.locked.Load(key)
	return ok && v.(bool)
}

// UnlockForTesting clears the lock on a key so tests can re-register.
func (r *Registry) UnlockForTesting(key string) {
	r.locked.Delete(key)
}
