// internal/service/orglock.go
package service

import (
	"sync"

	"github.com/google/uuid"
)

// OrgLocker serializes membership-mutating operations per organization. The
// last-owner and uniqueness checks are read-check-write sequences; holding
// the organization's lock across the whole sequence keeps two concurrent
// demotions from both passing the owner count check.
type OrgLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*orgLock
}

type orgLock struct {
	mu   sync.Mutex
	refs int
}

func NewOrgLocker() *OrgLocker {
	return &OrgLocker{locks: make(map[uuid.UUID]*orgLock)}
}

// Lock acquires the lock for orgID and returns the matching unlock func.
func (l *OrgLocker) Lock(orgID uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[orgID]
	if !ok {
		entry = &orgLock{}
		l.locks[orgID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, orgID)
		}
		l.mu.Unlock()
	}
}
