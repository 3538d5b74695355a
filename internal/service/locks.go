package service

import "sync"

// groupLocker hands out one mutex per group id so mutations on different
// groups proceed in parallel while each group keeps a single logical
// owner. Locks are never released from the map; groups are never deleted
// and the per-group footprint is one mutex.
type groupLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock acquires the mutex for groupID and returns its unlock func.
func (l *groupLocker) lock(groupID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	gm, ok := l.locks[groupID]
	if !ok {
		gm = &sync.Mutex{}
		l.locks[groupID] = gm
	}
	l.mu.Unlock()

	gm.Lock()
	return gm.Unlock
}
