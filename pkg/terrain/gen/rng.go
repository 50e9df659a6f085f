package gen

// Per-concern stream salts. Each generation pass draws from its own
// salted stream so reordering passes, or adding draws to one, never
// shifts another's sequence.
const (
	saltOffsets = 100
	saltTrees   = 600
	saltProps   = 700
)

// stream is a seeded deterministic RNG. Same seed + salt + draw order
// produce the identical sequence on every platform.
type stream struct {
	state int64
	draws int
}

func newStream(seed, salt int64) *stream {
	return &stream{state: seed ^ (salt*341873128712 + 132897987541)}
}

func (r *stream) next() int64 {
	r.draws++
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a uniform draw in [0,1).
func (r *stream) Float64() float64 {
	return float64(uint64(r.next())>>11) / (1 << 53)
}

// Range returns a uniform draw in [lo,hi).
func (r *stream) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// IntN returns a uniform draw in [0,n). n must be positive.
func (r *stream) IntN(n int) int {
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}
