package axis

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/rangebound/pkg/rangectl"
)

// Axis is a named range with the labels used to select it.
type Axis struct {
	name   string
	labels labels.Set
	Range  *rangectl.Range
}

func (r *Axis) Name() string { return r.name }

// Labels returns a copy of the axis labels.
func (r *Axis) Labels() labels.Set { return labels.Merge(nil, r.labels) }

// Dimension returns the value of the dimension label, empty when unset.
func (r *Axis) Dimension() string { return r.labels[LabelDimension] }

func (r *Axis) String() string {
	return fmt.Sprintf("axis: %s, range: %s, labels: %s", r.name, r.Range.Interval(), r.labels.String())
}

// DimensionSelector selects the axes spanning the given dimension.
func DimensionSelector(dimension string) labels.Selector {
	return labels.SelectorFromSet(labels.Set{LabelDimension: dimension})
}
