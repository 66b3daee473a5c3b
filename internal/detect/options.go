package detect

import "runtime"

// maxShards caps the fork-join width; beyond this the merge overhead
// outweighs any early-exit gain.
const maxShards = 32

// parallelMinBytes is the input size below which sharding is pointless
// and the sequential path is used regardless of Options.Shards.
const parallelMinBytes = 4 << 10

// Options configures a Detector.
type Options struct {
	// Shards is the number of independent chunks the input is split into.
	// 1 forces the sequential path; <=0 picks a default bounded by
	// available parallelism.
	Shards int
}

func (o Options) shards() int {
	n := o.Shards
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > maxShards {
		n = maxShards
	}
	return n
}
