package figure

import "github.com/matzehuels/gridplot/pkg/errors"

// shareOrder returns region indices ordered so every share source
// precedes its dependents. Fails when the share references form a
// cycle or point outside the figure.
func shareOrder(regions []*Region) ([]int, error) {
	n := len(regions)
	indexOf := make(map[*Region]int, n)
	for i, r := range regions {
		indexOf[r] = i
	}

	indegree := make([]int, n)
	dependents := make([][]int, n)
	for i, r := range regions {
		for _, src := range []*Region{r.shareX, r.shareY} {
			if src == nil {
				continue
			}
			j, ok := indexOf[src]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidConfig,
					"plot %d shares an axis with a region of another figure", i)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, d := range dependents[i] {
			indegree[d]--
			if indegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(order) != n {
		return nil, errors.New(errors.ErrCodeShareCycle,
			"shared-axis references form a cycle")
	}
	return order, nil
}
