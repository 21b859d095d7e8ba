package gir

import (
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// performance tuning variables, set once by SetTunings and read by NumServe
// and ChanDepth. Carried over from the teacher's package-level tuning
// pattern (utils.go): a fixed worker pool sized off the number of hardware
// cores in front of a bounded, backpressuring queue (spec §5).
var (
	numServe  int
	chanDepth int
)

// SetTunings sizes the worker pool and channel depth. nmServe <= 0 derives
// the server count from runtime.NumCPU(), corrected for hyperthreading via
// cpuid.CPU.ThreadsPerCore the way utils.go does; chnDepth <= 0 defaults to
// the server count.
func SetTunings(nmServe, chnDepth int) {
	nCPU := runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}

	if nmServe < 1 {
		nmServe = nCPU
		if cpuid.CPU.ThreadsPerCore > 1 {
			cores := nCPU / cpuid.CPU.ThreadsPerCore
			if cores > 0 {
				nmServe = cores
			}
		}
	}
	numServe = nmServe

	if chnDepth < 1 {
		chnDepth = numServe
	}
	chanDepth = chnDepth
}

func init() {
	SetTunings(0, 0)
}

// NumServe returns the configured worker-pool size.
func NumServe() int {
	if numServe < 1 {
		return 1
	}
	return numServe
}

// ChanDepth returns the configured bounded-queue depth in front of the pool.
func ChanDepth() int {
	if chanDepth < 1 {
		return 1
	}
	return chanDepth
}

// LogResidentMemoryBudget logs the host's total memory, echoing the
// teacher's "Mmry %d" diagnostic (utils.go), ahead of the memory-heavy NN
// phase (spec §5).
func LogResidentMemoryBudget() {
	totalGB := memory.TotalMemory() / (1024 * 1024 * 1024)
	log.Info().Uint64("total_memory_gb", totalGB).Msg("resident memory budget for nearest-neighbor phase")
}
