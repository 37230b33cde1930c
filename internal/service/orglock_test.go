package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrgLockerSerializesPerOrg(t *testing.T) {
	locker := NewOrgLocker()
	orgID := uuid.New()

	var mu sync.Mutex
	var inCritical int
	var maxInCritical int

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(orgID)
			defer unlock()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}

func TestOrgLockerIndependentOrgs(t *testing.T) {
	locker := NewOrgLocker()

	unlockA := locker.Lock(uuid.New())
	defer unlockA()

	// A second org must not block behind the first.
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock(uuid.New())
		unlockB()
		close(done)
	}()
	<-done
}

func TestOrgLockerCleansUpEntries(t *testing.T) {
	locker := NewOrgLocker()
	orgID := uuid.New()

	unlock := locker.Lock(orgID)
	unlock()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Empty(t, locker.locks)
}
