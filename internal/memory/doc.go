// Package memory configures Go's soft memory limit for containerized runs
// and provides a usage monitor with backpressure signals.
//
// Unlike GOMAXPROCS, which Go derives from cgroup CPU limits automatically,
// GOMEMLIMIT must be set explicitly or the process risks an OOM kill when
// decode probes allocate aggressively. [ConfigureFromEnv] derives it from
// the container limit; call it first in main, before significant
// allocations:
//
//	func main() {
//	    memory.ConfigureFromEnv()
//	    // ...
//	}
//
// # Environment Variables
//
//   - GOMEMLIMIT: standard Go variable; when set it takes precedence.
//   - MEMORY_LIMIT: container memory limit in bytes, typically injected via
//     the Kubernetes Downward API (resourceFieldRef: limits.memory).
//   - MEMORY_RATIO: fraction of MEMORY_LIMIT given to the Go heap, default
//     0.85. The remainder stays available for libvips decode buffers, CGO
//     allocations, and goroutine stacks; lower the ratio under heavy
//     decode workloads.
//
// GOMEMLIMIT is a soft limit: the collector works harder near it but the
// process may still exceed it briefly, and it does not cover CGO or mmap
// memory. That is what the ratio headroom is for.
//
// # Monitoring
//
// [Monitor] tracks heap usage against the limit and pauses memory-heavy
// work at the critical water mark:
//
//	monitor := memory.NewMonitor(memory.DefaultConfig())
//	monitor.Start()
//	defer monitor.Stop()
//
//	// in a probe worker:
//	if !monitor.WaitIfPaused() {
//	    return // shutting down
//	}
//
// The probe pool consumes the monitor through its pressure-gate parameter:
//
//	pool := render.NewPool(workers.ForCPU(8), render.FileProber{}, monitor)
//
// Recovery is automatic once usage drops back under the high water mark.
package memory
