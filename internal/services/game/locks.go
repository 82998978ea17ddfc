package game

import "sync"

// userLocks serializes operations per username so that two concurrent guesses
// for the same user cannot read-modify-write the session from stale state.
// Locks are created lazily and kept for the process lifetime; the key space
// is bounded by the number of registered users.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the lock for a username, creating it on first use
func (l *userLocks) get(username string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[username] = lock
	}
	return lock
}
