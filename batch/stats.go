package batch

import (
	"maps"

	"github.com/echoflaresat/geomkit/scene"
	"github.com/sasha-s/go-deadlock"
)

// Stats accumulates counters from concurrent query workers.
type Stats struct {
	mu          deadlock.Mutex
	ops         map[scene.Op]int
	errors      int
	cacheHits   int
	cacheMisses int
}

// Summary is a point-in-time copy of Stats.
type Summary struct {
	Queries     int              `yaml:"queries" json:"queries"`
	Errors      int              `yaml:"errors" json:"errors"`
	Ops         map[scene.Op]int `yaml:"ops,omitempty" json:"ops,omitempty"`
	CacheHits   int              `yaml:"cache-hits" json:"cache-hits"`
	CacheMisses int              `yaml:"cache-misses" json:"cache-misses"`
}

func (s *Stats) record(op scene.Op, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ops == nil {
		s.ops = make(map[scene.Op]int)
	}
	s.ops[op]++
	if failed {
		s.errors++
	}
}

func (s *Stats) cache(hit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hit {
		s.cacheHits++
	} else {
		s.cacheMisses++
	}
}

func (s *Stats) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.ops {
		total += n
	}
	return Summary{
		Queries:     total,
		Errors:      s.errors,
		Ops:         maps.Clone(s.ops),
		CacheHits:   s.cacheHits,
		CacheMisses: s.cacheMisses,
	}
}
