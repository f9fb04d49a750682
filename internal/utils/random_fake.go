package utils

import "math/rand"

// ScriptedRandom replays queued rolls before falling back to a fixed-seed generator.
// Tests use it to force jams, misses, escapes and damage values.
type ScriptedRandom struct {
	Floats []float64
	Ints   []int

	fallback *rand.Rand
}

// NewScriptedRandom creates a ScriptedRandom with an empty script
func NewScriptedRandom() *ScriptedRandom {
	//nolint:gosec // G404: deterministic test source
	return &ScriptedRandom{fallback: rand.New(rand.NewSource(1))}
}

// QueueFloats appends values returned by subsequent Float64 calls
func (s *ScriptedRandom) QueueFloats(values ...float64) *ScriptedRandom {
	s.Floats = append(s.Floats, values...)
	return s
}

// QueueInts appends values returned by subsequent Intn calls. Values are reduced modulo n.
func (s *ScriptedRandom) QueueInts(values ...int) *ScriptedRandom {
	s.Ints = append(s.Ints, values...)
	return s
}

// Float64 implements Random
func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) > 0 {
		v := s.Floats[0]
		s.Floats = s.Floats[1:]
		return v
	}
	return s.rng().Float64()
}

// Intn implements Random
func (s *ScriptedRandom) Intn(n int) int {
	if len(s.Ints) > 0 {
		v := s.Ints[0]
		s.Ints = s.Ints[1:]
		if n <= 0 {
			return 0
		}
		return ((v % n) + n) % n
	}
	return s.rng().Intn(n)
}

func (s *ScriptedRandom) rng() *rand.Rand {
	if s.fallback == nil {
		//nolint:gosec // G404: deterministic test source
		s.fallback = rand.New(rand.NewSource(1))
	}
	return s.fallback
}
