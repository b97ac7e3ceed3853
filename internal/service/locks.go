package service

import "sync"

// solLocks serializes read-modify-write sequences per Sol id.
type solLocks struct {
	mu    sync.Mutex
	locks map[string]*solLock
}

type solLock struct {
	sync.Mutex
	refs int
}

func newSolLocks() *solLocks {
	return &solLocks{locks: make(map[string]*solLock)}
}

// lock blocks until id is free and returns the matching unlock function.
func (l *solLocks) lock(id string) func() {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = &solLock{}
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.Lock()
	return func() {
		sl.Unlock()
		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
