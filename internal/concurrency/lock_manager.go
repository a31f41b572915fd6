package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Services key it by player id so
// every read-compute-commit on a player runs one at a time in this process.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the mutex for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	lock := lm.GetLock(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}
