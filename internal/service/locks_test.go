package service

import (
	"sync"
	"testing"
)

func TestSolLocks(t *testing.T) {
	locks := newSolLocks()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("sol-1")
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("expected 50 increments, got %d", counter)
	}
	if len(locks.locks) != 0 {
		t.Errorf("expected released locks to be dropped, %d left", len(locks.locks))
	}
}

func TestSolLocksIndependentIDs(t *testing.T) {
	locks := newSolLocks()

	unlockA := locks.lock("a")
	done := make(chan struct{})
	go func() {
		unlock := locks.lock("b")
		unlock()
		close(done)
	}()
	<-done // would deadlock if "b" waited on "a"
	unlockA()
}
