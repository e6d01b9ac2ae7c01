package leaktest

import (
	"testing"
	"time"
)

func TestCheckNoGoroutineLeak_CleanFunction(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() {
			close(done)
		}()
		<-done
	})
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	stop := make(chan struct{})
	go func() {
		<-stop
	}()

	// One lingering goroutine is within a tolerance of one
	checker.Check(1)

	close(stop)
	time.Sleep(10 * time.Millisecond)
}
