// Package source holds the columnar data that drives data driven ranges.
package source

import (
	"fmt"
	"sort"

	"github.com/henderiw/rangebound/pkg/interval"
)

// ChangeFunc is called after the data of the source changed.
type ChangeFunc func(s *Source)

// Source is a set of equally long named float64 columns. Like the ranges it
// feeds, a Source is not safe for concurrent use.
type Source struct {
	columns   map[string][]float64
	length    int
	observers []ChangeFunc
}

func New(cols map[string][]float64) (*Source, error) {
	n, err := columnLength(cols)
	if err != nil {
		return nil, err
	}
	s := &Source{columns: make(map[string][]float64, len(cols)), length: n}
	for name, vals := range cols {
		s.columns[name] = append([]float64(nil), vals...)
	}
	return s, nil
}

func columnLength(cols map[string][]float64) (int, error) {
	n := -1
	for _, name := range sortedNames(cols) {
		switch {
		case n == -1:
			n = len(cols[name])
		case len(cols[name]) != n:
			return 0, fmt.Errorf("column %s has %d values, expected %d", name, len(cols[name]), n)
		}
	}
	if n == -1 {
		n = 0
	}
	return n, nil
}

func sortedNames(cols map[string][]float64) []string {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the column names in sorted order.
func (s *Source) Names() []string { return sortedNames(s.columns) }

// Len returns the number of rows.
func (s *Source) Len() int { return s.length }

// Column returns a copy of the named column.
func (s *Source) Column(name string) ([]float64, error) {
	vals, ok := s.columns[name]
	if !ok {
		return nil, fmt.Errorf("no column found for: %s", name)
	}
	return append([]float64(nil), vals...), nil
}

// Extent returns the extent of the named column with every value widened by
// halfWidth on both sides. NaN and infinite values are skipped.
func (s *Source) Extent(name string, halfWidth float64) (interval.Extent, error) {
	vals, ok := s.columns[name]
	if !ok {
		return interval.EmptyExtent(), fmt.Errorf("no column found for: %s", name)
	}
	return interval.ExtentOf(vals...).Pad(halfWidth), nil
}

// Stream appends rows. cols must hold exactly the columns of the source.
func (s *Source) Stream(cols map[string][]float64) error {
	n, err := columnLength(cols)
	if err != nil {
		return err
	}
	if len(cols) != len(s.columns) {
		return fmt.Errorf("stream has %d columns, source has %d", len(cols), len(s.columns))
	}
	for name := range cols {
		if _, ok := s.columns[name]; !ok {
			return fmt.Errorf("stream column %s not in source", name)
		}
	}
	for name, vals := range cols {
		s.columns[name] = append(s.columns[name], vals...)
	}
	s.length += n
	s.notify()
	return nil
}

// Replace swaps the whole data set.
func (s *Source) Replace(cols map[string][]float64) error {
	n, err := columnLength(cols)
	if err != nil {
		return err
	}
	s.columns = make(map[string][]float64, len(cols))
	for name, vals := range cols {
		s.columns[name] = append([]float64(nil), vals...)
	}
	s.length = n
	s.notify()
	return nil
}

// Subscribe registers fn to run synchronously after every change.
func (s *Source) Subscribe(fn ChangeFunc) {
	s.observers = append(s.observers, fn)
}

func (s *Source) notify() {
	for _, fn := range s.observers {
		fn(s)
	}
}
