package bounds

import (
	"parbox.dev/parbox/geo"
)

// reduceSlice computes the bounding box of a homogeneous sequence by
// divide and conquer. Sequences at or below the threshold are folded
// sequentially in order; longer ones are split at the midpoint and the
// halves reduced through the pool. The midpoint only balances work
// between the halves: any split point produces the same box.
func reduceSlice[T any](p *Pool, items []T, threshold int, fn func(*T) (geo.Box, error)) (geo.Box, error) {
	if threshold < 1 {
		threshold = 1
	}
	if len(items) == 0 {
		return geo.Empty(), nil
	}
	if len(items) <= threshold {
		box := geo.Empty()
		for i := range items {
			b, err := fn(&items[i])
			if err != nil {
				return geo.Empty(), err
			}
			box = box.Union(b)
		}
		return box, nil
	}

	mid := len(items) / 2
	leftItems, rightItems := items[:mid], items[mid:]
	return p.join(
		func() (geo.Box, error) { return reduceSlice(p, leftItems, threshold, fn) },
		func() (geo.Box, error) { return reduceSlice(p, rightItems, threshold, fn) },
	)
}
