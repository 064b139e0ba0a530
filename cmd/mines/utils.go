package main

import (
	"hash/maphash"
	"iter"
	"math/rand/v2"
	"strings"
)

// newRand returns a PCG source for seed, or a random one when seed is 0.
func newRand(seed uint64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, stream))
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
