// Package trace parses and aggregates the profiling log lines a target
// emits over its serial sink. Each completed span arrives as one
// "<EPSS name: 1234µs>" line, possibly wrapped in whatever framing the
// board's logger adds around it.
package trace

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	openTag  = "<EPSS "
	closeTag = ">"
)

// Record is one parsed span measurement.
type Record struct {
	Name   string
	Micros uint64
}

// ParseLine extracts a Record from a log line. Text around the snapshot
// tag (timestamps, log prefixes) is ignored. The second return value is
// false for lines that carry no well-formed snapshot.
func ParseLine(line string) (Record, bool) {
	start := strings.Index(line, openTag)
	if start < 0 {
		return Record{}, false
	}
	rest := line[start+len(openTag):]

	end := strings.Index(rest, closeTag)
	if end < 0 {
		return Record{}, false
	}
	body := rest[:end]

	// the name is a free-form label, so split on the last separator
	sep := strings.LastIndex(body, ": ")
	if sep < 0 {
		return Record{}, false
	}
	name := body[:sep]
	dur := strings.TrimSpace(body[sep+2:])

	dur = strings.TrimSuffix(dur, "µs")
	dur = strings.TrimSuffix(dur, "us")

	micros, err := strconv.ParseUint(dur, 10, 64)
	if err != nil || name == "" {
		return Record{}, false
	}
	return Record{Name: name, Micros: micros}, true
}

// Stats accumulates the measurements seen for one label.
type Stats struct {
	Count uint64
	Sum   uint64
	Min   uint64
	Max   uint64
}

// Mean returns the average duration in microseconds.
func (s *Stats) Mean() uint64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / s.Count
}

func (s *Stats) add(micros uint64) {
	if s.Count == 0 || micros < s.Min {
		s.Min = micros
	}
	if micros > s.Max {
		s.Max = micros
	}
	s.Count++
	s.Sum += micros
}

// Aggregator collects per-label statistics from a stream of records.
type Aggregator struct {
	stats map[string]*Stats
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{stats: make(map[string]*Stats)}
}

// Add folds one record into the statistics.
func (a *Aggregator) Add(r Record) {
	s, ok := a.stats[r.Name]
	if !ok {
		s = &Stats{}
		a.stats[r.Name] = s
	}
	s.add(r.Micros)
}

// Get returns the statistics for a label, or nil if it was never seen.
func (a *Aggregator) Get(name string) *Stats {
	return a.stats[name]
}

// Labels returns all seen labels, sorted.
func (a *Aggregator) Labels() []string {
	labels := make([]string, 0, len(a.stats))
	for name := range a.stats {
		labels = append(labels, name)
	}
	sort.Strings(labels)
	return labels
}

// WriteReport renders a per-label summary table.
func (a *Aggregator) WriteReport(w io.Writer) error {
	if len(a.stats) == 0 {
		_, err := fmt.Fprintln(w, "no snapshots recorded")
		return err
	}

	if _, err := fmt.Fprintf(w, "%-32s %8s %10s %10s %10s\n", "name", "count", "min µs", "mean µs", "max µs"); err != nil {
		return err
	}
	for _, name := range a.Labels() {
		s := a.stats[name]
		if _, err := fmt.Fprintf(w, "%-32s %8d %10d %10d %10d\n", name, s.Count, s.Min, s.Mean(), s.Max); err != nil {
			return err
		}
	}
	return nil
}
