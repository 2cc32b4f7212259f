// Package prng provides the injectable PRNG collaborator used by the
// NewSeed vote (spec.md §4.4, §9 "Global PRNG... Inject it as a
// dependency on the server so tests can stub determinism"), grounded
// on actions.rs's `thread_rng().gen_range(0, 1_000_000_000)` call.
package prng

import "math/rand"

// Source is the minimal interface the reducer needs from a PRNG.
type Source interface {
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// mathRand adapts math/rand to Source. No third-party PRNG library
// appears anywhere in the retrieval pack to ground an alternative
// choice on, so this stays on the standard library (see DESIGN.md).
type mathRand struct {
	r *rand.Rand
}

// NewMathRand returns a Source seeded with seed.
func NewMathRand(seed int64) Source {
	return mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m mathRand) Intn(n int) int { return m.r.Intn(n) }

// Fixed returns a Source that yields value, clamped to n-1 when value
// is not below n, for deterministic tests (spec.md §9).
func Fixed(value int) Source {
	return fixedSource{value: value}
}

type fixedSource struct{ value int }

func (f fixedSource) Intn(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}
