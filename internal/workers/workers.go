package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns a worker count scaled from the CPUs actually available to
// the process. GOMAXPROCS tracks the container CPU limit (Go 1.19+), which
// is why it is used here instead of runtime.NumCPU.
//
// The multiplier adjusts for the task shape (1.0 CPU-bound, 2.0 I/O-bound,
// 1.5 mixed). A positive limit caps the result; the DECODE_WORKERS
// environment variable overrides the computed count, still subject to the
// cap.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv("DECODE_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	workers := int(float64(runtime.GOMAXPROCS(0)) * multiplier)
	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}
	return workers
}

// ForCPU sizes a pool for CPU-bound work, one worker per CPU.
func ForCPU(limit int) int {
	return Count(1.0, limit)
}

// ForIO sizes a pool for I/O-bound work, two workers per CPU.
func ForIO(limit int) int {
	return Count(2.0, limit)
}

// ForMixed sizes a pool for mixed work, 1.5 workers per CPU.
func ForMixed(limit int) int {
	return Count(1.5, limit)
}
