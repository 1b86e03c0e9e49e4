package schedule

import "sync"

// =============================================================================
// SCOPE LOCK - Per-(employee, date) mutual exclusion
// =============================================================================

// scopeLock serializes conflict-check-plus-write for a single
// (employee, date) scope. Entries are refcounted and removed once the
// last holder releases, so the map does not grow with the schedule.
// Requests for different employees or different days never contend.
type scopeLock struct {
	mu     sync.Mutex
	scopes map[string]*scopeEntry
}

type scopeEntry struct {
	mu   sync.Mutex
	refs int
}

func newScopeLock() *scopeLock {
	return &scopeLock{scopes: make(map[string]*scopeEntry)}
}

func scopeKey(employeeID EmployeeID, date Date) string {
	return string(employeeID) + "|" + date.String()
}

// acquire blocks until the scope is exclusively held.
func (l *scopeLock) acquire(key string) {
	l.mu.Lock()
	entry, ok := l.scopes[key]
	if !ok {
		entry = &scopeEntry{}
		l.scopes[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// release unlocks the scope and drops the entry when unreferenced.
func (l *scopeLock) release(key string) {
	l.mu.Lock()
	entry := l.scopes[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.scopes, key)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
