// Package swapsolver finds a shortest sequence of pair swaps
// transforming one sequence into another of the same multiset, via
// iterative depth-first branch-and-bound seeded by a greedy upper
// bound.
package swapsolver

import (
	"fmt"
	"strings"

	"github.com/crossplay/waffle/pkg/permute"
)

// Pair is one applied swap: positions A and B were exchanged.
type Pair struct {
	A, B int
}

type frame struct {
	pairIter *permute.Pairs
	a, b     int
}

// Solve returns a shortest sequence of swaps transforming start into
// target, or ok=false if start and target don't hold the same
// multiset of values (the only way this search can fail to terminate
// with a solution). cancel, when non-nil, is consulted before every
// candidate pair; once it returns true the search stops and returns
// the best solution found so far, which is never worse than the
// greedy seed.
func Solve[T comparable](start, target []T, cancel func() bool) (solution []Pair, ok bool) {
	if len(start) != len(target) || !sameMultiset(start, target) {
		return nil, false
	}

	if equalSlices(start, target) {
		return []Pair{}, true
	}

	best := greedySeed(start, target)

	state := append([]T(nil), start...)
	visited := map[string]int{stateKey(state): 0}

	var stack []frame
	pairIter := permute.NewPairs(len(start))

	for {
		if cancel != nil && cancel() {
			break
		}

		a, b, have := pairIter.Next()
		if !have {
			if len(stack) == 0 {
				break
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			state[top.a], state[top.b] = state[top.b], state[top.a]
			pairIter = top.pairIter
			continue
		}

		if state[a] == target[a] || state[b] == target[b] {
			continue
		}
		if state[a] != target[b] && state[b] != target[a] {
			continue
		}

		state[a], state[b] = state[b], state[a]
		depth := len(stack) + 1

		key := stateKey(state)
		if prevDepth, seen := visited[key]; seen && prevDepth <= depth {
			state[a], state[b] = state[b], state[a]
			continue
		}
		visited[key] = depth

		if equalSlices(state, target) {
			if depth < len(best) {
				next := make([]Pair, 0, depth)
				for _, f := range stack {
					next = append(next, Pair{f.a, f.b})
				}
				next = append(next, Pair{a, b})
				best = next
			}
			state[a], state[b] = state[b], state[a]
			continue
		}

		if len(stack)+2 < len(best) {
			stack = append(stack, frame{pairIter: pairIter, a: a, b: b})
			pairIter = permute.NewPairs(len(start))
		} else {
			state[a], state[b] = state[b], state[a]
		}
	}

	return best, true
}

// greedySeed computes the upper bound of spec step 1: for each
// mismatched position i, scan forward for the smallest j with
// state[j] == target[i] and state[j] != target[j], swap, and record
// (i, j). Always succeeds for equal multisets, in at most n-1 swaps.
func greedySeed[T comparable](start, target []T) []Pair {
	state := append([]T(nil), start...)
	var seed []Pair

	for i := range state {
		if state[i] == target[i] {
			continue
		}
		for j := i + 1; j < len(state); j++ {
			if state[j] == target[i] && state[j] != target[j] {
				state[i], state[j] = state[j], state[i]
				seed = append(seed, Pair{i, j})
				break
			}
		}
	}

	return seed
}

func equalSlices[T comparable](a, b []T) bool {
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

func sameMultiset[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[T]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func stateKey[T any](state []T) string {
	var sb strings.Builder
	for _, v := range state {
		fmt.Fprintf(&sb, "%v\x00", v)
	}
	return sb.String()
}
