package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Wall-clock accounting for build and export stages.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("terrain.BuildHeightField")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// Reset clears accumulated totals.
func Reset() {
	mu.Lock()
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// Summary formats accumulated totals, slowest first.
// Example: "terrain.BuildHeightField:41.3ms, render.WritePNG:12.8ms"
func Summary() string {
	mu.Lock()
	defer mu.Unlock()

	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(totals))
	for k, v := range totals {
		list = append(list, entry{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })

	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000.0)
	}
	return strings.Join(parts, ", ")
}
