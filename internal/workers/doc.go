/*
Package workers sizes worker pools for containerized environments.

runtime.NumCPU() reports the host machine's CPU count, which in a cgroup-
limited pod can be wildly larger than the CPUs actually granted. Go sets
GOMAXPROCS from the container CPU limit since 1.19, so that is the number
these helpers scale from:

	// decode probe pool: CPU-bound, one worker per CPU, capped at 8
	pool := render.NewPool(workers.ForCPU(8), render.FileProber{}, monitor)

[ForCPU], [ForIO], and [ForMixed] apply multipliers of 1.0, 2.0, and 1.5
per available CPU; [Count] takes an explicit multiplier. All of them clamp
to at least one worker and honor the cap argument (0 means uncapped).

The DECODE_WORKERS environment variable overrides the computed count for
operational tuning; the cap still applies.
*/
package workers
