// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/taibuivan/yomira-reader/internal/platform/constants"
)

// PageCounter decides how many pages a chapter has on a given request.
type PageCounter interface {
	Pages(chapterID string) int
}

// # Random Counter

// RandomCounter draws a page count uniformly from
// [constants.MinPagesPerChapter, constants.MaxPagesPerChapter].
//
// # Concurrency
//
// Safe for concurrent use; the generator is guarded by a mutex.
type RandomCounter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomCounter seeds a [RandomCounter]. A zero seed uses the current time.
func NewRandomCounter(seed uint64) *RandomCounter {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomCounter{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pages implements [PageCounter].
func (counter *RandomCounter) Pages(_ string) int {
	counter.mu.Lock()
	defer counter.mu.Unlock()

	span := constants.MaxPagesPerChapter - constants.MinPagesPerChapter + 1
	return constants.MinPagesPerChapter + counter.rng.IntN(span)
}

// # Fixed Counter

// FixedCounter returns the same page count for every chapter.
type FixedCounter int

// Pages implements [PageCounter].
func (counter FixedCounter) Pages(_ string) int {
	return int(counter)
}
