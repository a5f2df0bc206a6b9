package application

import "sync"

// pollLocks serializes mutators per poll id. Distinct polls proceed fully in
// parallel; the guard mutex is only held long enough to look up the entry.
type pollLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPollLocks() *pollLocks {
	return &pollLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a poll id, creating it on first use.
func (l *pollLocks) get(pollID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[pollID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[pollID] = lock
	}
	return lock
}

// release drops the entry for a poll that no longer exists.
func (l *pollLocks) release(pollID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, pollID)
}
