package checkout

import "time"

// CancelFunc stops a scheduled task. Calling it after the task has run
// is harmless.
type CancelFunc func()

// Scheduler defers work the submission lifecycle needs to run later:
// the simulated placement latency and the success/failure display
// windows. Tasks must be cancellable so a torn-down session cannot be
// mutated by a timer that outlived it.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler is the production scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
