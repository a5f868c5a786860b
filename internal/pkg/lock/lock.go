// Package lock provides per-account locking for balance and pity
// mutations. Every read-balance, decide, write-balance sequence must run
// under the owning account's lock to avoid lost updates.
package lock

import (
	"context"
	"sync"
	"time"
)

// accountMutex wraps a mutex with reference counting for cleanup.
type accountMutex struct {
	mu       sync.Mutex
	refCount int
}

// AccountLock provides per-account locking keyed by the opaque account id.
type AccountLock struct {
	locks sync.Map // map[string]*accountMutex
	pool  sync.Pool
}

// NewAccountLock creates a new AccountLock instance.
func NewAccountLock() *AccountLock {
	return &AccountLock{
		pool: sync.Pool{
			New: func() any {
				return &accountMutex{}
			},
		},
	}
}

// getLock retrieves or creates the mutex for the given account.
func (al *AccountLock) getLock(accountID string) *accountMutex {
	if v, ok := al.locks.Load(accountID); ok {
		return v.(*accountMutex)
	}

	newLock := al.pool.Get().(*accountMutex)
	newLock.refCount = 0

	actual, loaded := al.locks.LoadOrStore(accountID, newLock)
	if loaded {
		// Another goroutine created the lock first, return ours to pool
		al.pool.Put(newLock)
	}
	return actual.(*accountMutex)
}

// Lock acquires the lock for an account.
func (al *AccountLock) Lock(accountID string) {
	lock := al.getLock(accountID)
	lock.mu.Lock()
	lock.refCount++
}

// Unlock releases the lock for an account.
func (al *AccountLock) Unlock(accountID string) {
	if v, ok := al.locks.Load(accountID); ok {
		lock := v.(*accountMutex)
		lock.refCount--
		lock.mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
func (al *AccountLock) TryLock(accountID string) bool {
	lock := al.getLock(accountID)
	if lock.mu.TryLock() {
		lock.refCount++
		return true
	}
	return false
}

// LockWithTimeout attempts to acquire the lock within the timeout.
// Returns true if the lock was acquired.
func (al *AccountLock) LockWithTimeout(ctx context.Context, accountID string, timeout time.Duration) bool {
	lock := al.getLock(accountID)

	done := make(chan struct{})
	go func() {
		lock.mu.Lock()
		close(done)
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-done:
		lock.refCount++
		return true
	case <-timeoutCtx.Done():
		// The waiting goroutine will eventually acquire the mutex; release
		// it as soon as it does so nobody is left holding a stale lock.
		go func() {
			<-done
			lock.mu.Unlock()
		}()
		return false
	}
}

// WithLock executes fn while holding the account's lock.
func (al *AccountLock) WithLock(accountID string, fn func() error) error {
	al.Lock(accountID)
	defer al.Unlock(accountID)
	return fn()
}

// WithLockTimeout executes fn while holding the account's lock,
// returning ErrLockTimeout if the lock cannot be acquired in time.
func (al *AccountLock) WithLockTimeout(ctx context.Context, accountID string, timeout time.Duration, fn func() error) error {
	if !al.LockWithTimeout(ctx, accountID, timeout) {
		return ErrLockTimeout
	}
	defer al.Unlock(accountID)
	return fn()
}

// IsLocked reports whether an account's lock is currently held. This is
// a point-in-time check and may change immediately after.
func (al *AccountLock) IsLocked(accountID string) bool {
	if v, ok := al.locks.Load(accountID); ok {
		lock := v.(*accountMutex)
		if lock.mu.TryLock() {
			lock.mu.Unlock()
			return false
		}
		return true
	}
	return false
}
