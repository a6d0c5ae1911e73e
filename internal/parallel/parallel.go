// Package parallel splits index ranges across goroutines for the element loops of the
// tensor engine.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultMinChunk is the smallest range worth a goroutine of its own.
const DefaultMinChunk = 1 << 14

// Config controls how a range is split.
type Config struct {
	Workers  int // Upper bound on goroutines; 1 or less runs inline.
	MinChunk int // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: DefaultMinChunk,
	}
}

// Serial returns a configuration that always runs inline.
func Serial() Config {
	return Config{Workers: 1, MinChunk: DefaultMinChunk}
}

// Chunks returns the number of ranges Ranges would split n items into.
func (c Config) Chunks(n int) int {
	if c.Workers <= 1 || n < 2*c.MinChunk {
		return 1
	}
	return min(c.Workers, n/max(c.MinChunk, 1))
}

// Ranges calls f on disjoint [start, end) ranges that together cover [0, n), and returns
// once every call has returned. Calls may run concurrently, so f must only write to
// state owned by its own range.
func Ranges(n int, cfg Config, f func(start, end int)) {
	if n <= 0 {
		return
	}
	chunks := cfg.Chunks(n)
	if chunks == 1 {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	size := (n + chunks - 1) / chunks
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
