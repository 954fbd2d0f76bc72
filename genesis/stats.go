package genesis

import (
	"github.com/rcrowley/go-metrics"
)

// Stats counts what an Unpacker did to the filesystem.
type Stats struct {
	registry     metrics.Registry
	extracted    metrics.Counter
	placeholders metrics.Counter
	kept         metrics.Counter
	bytes        metrics.Counter
}

func NewStats() *Stats {
	r := metrics.NewRegistry()
	return &Stats{
		registry:     r,
		extracted:    metrics.GetOrRegisterCounter("genesis/extracted", r),
		placeholders: metrics.GetOrRegisterCounter("genesis/placeholders", r),
		kept:         metrics.GetOrRegisterCounter("genesis/kept", r),
		bytes:        metrics.GetOrRegisterCounter("genesis/bytes", r),
	}
}

// Extracted is the number of genesis states copied out of archives.
func (s *Stats) Extracted() int64 {
	return s.extracted.Count()
}

// Placeholders is the number of empty genesis files created.
func (s *Stats) Placeholders() int64 {
	return s.placeholders.Count()
}

// Kept is the number of already present placeholders left untouched.
func (s *Stats) Kept() int64 {
	return s.kept.Count()
}

func (s *Stats) Bytes() int64 {
	return s.bytes.Count()
}

// Each calls fn for every registered counter.
func (s *Stats) Each(fn func(name string, value int64)) {
	s.registry.Each(func(name string, i interface{}) {
		if c, ok := i.(metrics.Counter); ok {
			fn(name, c.Count())
		}
	})
}
