package axis

// Iterator walks a snapshot of the table in name order.
type Iterator struct {
	current int
	keys    []string
	axes    map[string]*Axis
}

func (r *Iterator) Value() *Axis {
	return r.axes[r.keys[r.current]]
}

func (r *Iterator) Name() string {
	return r.keys[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
