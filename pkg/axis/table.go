package axis

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/rangebound/pkg/rangectl"
)

const (
	// LabelDimension is the label key holding the screen dimension an axis
	// spans: "width" for x axes, "height" for y axes.
	LabelDimension  = "dimension"
	DimensionWidth  = "width"
	DimensionHeight = "height"
)

type Table interface {
	Get(name string) (*Axis, error)
	Add(name string, l labels.Set, cfg rangectl.Config) (*Axis, error)
	Remove(name string) error

	Iterate() *Iterator

	Count() int
	Has(name string) bool

	GetAll() []*Axis
	GetByLabel(selector labels.Selector) []*Axis

	Pan(selector labels.Selector, delta float64) int
}

// Spec is the initial content of one axis.
type Spec struct {
	Labels labels.Set
	Config rangectl.Config
}

type Option func(*table)

func WithLogger(l logr.Logger) Option {
	return func(r *table) {
		r.l = l
	}
}

// New returns a table holding the initial axes. Every axis that fails to
// build is reported; the others are still added.
func New(initial map[string]Spec, opts ...Option) (Table, error) {
	r := &table{
		m:    new(sync.RWMutex),
		axes: map[string]*Axis{},
		l:    logr.Discard(),
	}
	for _, o := range opts {
		o(r)
	}

	var errm error
	for name, s := range initial {
		if _, err := r.Add(name, s.Labels, s.Config); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

// table guards the axis map only; ranges are operated on outside the lock so
// range observers may call back into the table.
type table struct {
	m    *sync.RWMutex
	axes map[string]*Axis
	l    logr.Logger
}

func (r *table) Get(name string) (*Axis, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	a, ok := r.axes[name]
	if !ok {
		return nil, fmt.Errorf("no axis found for: %s", name)
	}
	return a, nil
}

func (r *table) Add(name string, l labels.Set, cfg rangectl.Config) (*Axis, error) {
	if name == "" {
		return nil, fmt.Errorf("axis name cannot be empty")
	}
	rng, err := rangectl.New(cfg, rangectl.WithLogger(r.l.WithValues("axis", name)))
	if err != nil {
		return nil, fmt.Errorf("axis %s: %w", name, err)
	}

	r.m.Lock()
	defer r.m.Unlock()
	if _, ok := r.axes[name]; ok {
		return nil, fmt.Errorf("axis %s already exists", name)
	}
	a := &Axis{name: name, labels: labels.Merge(nil, l), Range: rng}
	r.axes[name] = a
	r.l.V(1).Info("axis added", "axis", name, "labels", a.labels.String(), "mode", rng.Mode())
	return a, nil
}

func (r *table) Remove(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.axes[name]; !ok {
		return fmt.Errorf("axis %s not found", name)
	}
	delete(r.axes, name)
	return nil
}

func (r *table) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table) iterate() *Iterator {
	keys := make([]string, 0, len(r.axes))
	axes := make(map[string]*Axis, len(r.axes))
	for key, a := range r.axes {
		keys = append(keys, key)
		axes[key] = a
	}
	sort.Strings(keys)

	return &Iterator{current: -1, keys: keys, axes: axes}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.axes)
}

func (r *table) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.axes[name]
	return ok
}

func (r *table) GetAll() []*Axis {
	return r.GetByLabel(labels.Everything())
}

// GetByLabel returns the axes whose labels match selector, sorted by name.
func (r *table) GetByLabel(selector labels.Selector) []*Axis {
	iter := r.Iterate()

	axes := []*Axis{}
	for iter.Next() {
		if selector.Matches(iter.Value().labels) {
			axes = append(axes, iter.Value())
		}
	}
	return axes
}

// Pan shifts every axis matching selector by delta and returns the number of
// axes it was applied to.
func (r *table) Pan(selector labels.Selector, delta float64) int {
	axes := r.GetByLabel(selector)
	for _, a := range axes {
		a.Range.Pan(delta)
	}
	return len(axes)
}
