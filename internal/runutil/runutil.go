// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves --threads: values <= 0 mean all CPUs.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// IdleWorkers reports how many of threads workers can never receive a job
// when there are only jobs units of work (0 if all can be used).
func IdleWorkers(threads, jobs int) int {
	thr := EffectiveThreads(threads)
	if jobs >= thr {
		return 0
	}
	return thr - jobs
}
