// Package diversity tracks how often each hero has been recommended within a
// draft session, so repeated suggestions can be damped.
package diversity

import (
	"maps"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

// State counts prior top results per hero. The zero value is an empty state.
// A State is never modified in place; Record returns a new one, so a value
// can be shared between goroutines.
type State struct {
	counts map[string]int
}

// FromCounts builds a State from stored counts. Non-positive entries are dropped.
func FromCounts(counts map[string]int) State {
	out := make(map[string]int, len(counts))
	for h, n := range counts {
		if n > 0 {
			out[h] = n
		}
	}
	return State{counts: out}
}

// Count returns how many prior results included hero.
func (s State) Count(hero string) int {
	return s.counts[hero]
}

// Len returns the number of distinct heroes seen.
func (s State) Len() int {
	return len(s.counts)
}

// Record returns a copy of s with every hero in top counted once more.
func (s State) Record(top []string) State {
	out := make(map[string]int, len(s.counts)+len(top))
	maps.Copy(out, s.counts)
	for _, h := range top {
		out[h]++
	}
	return State{counts: out}
}

// Counts returns a copy of the per-hero counts.
func (s State) Counts() map[string]int {
	return maps.Clone(s.counts)
}

// Heroes returns the seen heroes sorted by name.
func (s State) Heroes() []string {
	return slices.Sorted(maps.Keys(s.counts))
}

var (
	_ msgpack.CustomEncoder = State{}
	_ msgpack.CustomDecoder = (*State)(nil)
)

// EncodeMsgpack writes the counts as a msgpack map.
func (s State) EncodeMsgpack(enc *msgpack.Encoder) error {
	if s.counts == nil {
		return enc.Encode(map[string]int{})
	}
	return enc.Encode(s.counts)
}

// DecodeMsgpack reads counts written by EncodeMsgpack.
func (s *State) DecodeMsgpack(dec *msgpack.Decoder) error {
	var counts map[string]int
	if err := dec.Decode(&counts); err != nil {
		return err
	}
	*s = FromCounts(counts)
	return nil
}
