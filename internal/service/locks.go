package service

import "sync"

// orderLocks hands out one mutex per order ID and forgets it once nobody holds it.
type orderLocks struct {
	mu sync.Mutex
	m  map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newOrderLocks() *orderLocks {
	return &orderLocks{m: make(map[string]*lockEntry)}
}

func (l *orderLocks) Lock(orderID string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.m[orderID]
	if !ok {
		e = &lockEntry{}
		l.m[orderID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.m, orderID)
		}
		l.mu.Unlock()
	}
}

func (l *orderLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
