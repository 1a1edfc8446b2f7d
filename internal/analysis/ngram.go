// Package analysis finds structure in recorded move logs.
package analysis

import (
	"sort"

	"github.com/SeamusWaldron/rcube"
)

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// NGram is a move sequence that appears more than once in a log.
type NGram struct {
	N           int          `json:"n"`
	Moves       []rcube.Move `json:"-"`
	Sequence    []string     `json:"sequence"`
	Count       int          `json:"count"`
	Occurrences []int        `json:"occurrences,omitempty"` // start indices
}

// NGramReport holds the most frequent n-grams per length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // keyed by n
}

// Lengths returns the n values present in the report in ascending order.
func (r *NGramReport) Lengths() []int {
	ns := make([]int, 0, len(r.TopNGrams))
	for n := range r.TopNGrams {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}

// Empty reports whether no repeated sequence was found.
func (r *NGramReport) Empty() bool {
	return len(r.TopNGrams) == 0
}

// RollingHash is a Rabin-Karp hash over a fixed-size window of moves.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []rcube.Move
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]rcube.Move, 0, n),
		pow:    1,
	}
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll pushes a move into the window, dropping the oldest once it is full.
func (rh *RollingHash) Roll(m rcube.Move) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, m)
		rh.hash = rh.hash*rh.base + uint64(m)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(m)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = m
}

// Hash returns the hash of the current window.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []rcube.Move {
	out := make([]rcube.Move, len(rh.window))
	copy(out, rh.window)
	return out
}

// Ready returns true once the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// MineNGrams finds the topK most frequent repeated n-grams for each n in
// [minN, maxN]. Sequences seen only once are not reported.
func MineNGrams(moves []rcube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 {
		minN = 1
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(moves, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

// entry tracks one distinct window while mining. Windows that collide on
// hash but differ in moves are chained.
type entry struct {
	moves       []rcube.Move
	count       int
	first       int
	occurrences []int
}

func mineNGramsForN(moves []rcube.Move, n, topK int) []NGram {
	buckets := make(map[uint64][]*entry)
	rh := NewRollingHash(n)

	for i, m := range moves {
		rh.Roll(m)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		window := rh.Window()
		hash := rh.Hash()

		var found *entry
		for _, e := range buckets[hash] {
			if equalMoves(e.moves, window) {
				found = e
				break
			}
		}
		if found == nil {
			buckets[hash] = append(buckets[hash], &entry{
				moves:       window,
				count:       1,
				first:       start,
				occurrences: []int{start},
			})
			continue
		}

		found.count++
		if len(found.occurrences) < maxOccurrences {
			found.occurrences = append(found.occurrences, start)
		}
	}

	var repeated []*entry
	for _, bucket := range buckets {
		for _, e := range bucket {
			if e.count >= 2 {
				repeated = append(repeated, e)
			}
		}
	}

	// Ties go to the sequence seen first so output is stable.
	sort.Slice(repeated, func(i, j int) bool {
		if repeated[i].count != repeated[j].count {
			return repeated[i].count > repeated[j].count
		}
		return repeated[i].first < repeated[j].first
	})

	if topK > 0 && len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		seq := make([]string, len(e.moves))
		for j, m := range e.moves {
			seq[j] = m.String()
		}
		result[i] = NGram{
			N:           n,
			Moves:       e.moves,
			Sequence:    seq,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}

func equalMoves(a, b []rcube.Move) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
