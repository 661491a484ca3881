package layer

import (
	"errors"
	"fmt"
)

// ErrMisaligned is returned by [GetBorders] when a partial sum of the finer
// sequence never lands exactly on a partial sum of the coarser one.
var ErrMisaligned = errors.New("layer: group sizes are misaligned")

// HierarchyMismatch is returned when the number of per-layer hierarchies
// supplied does not match the number of node layers (one hierarchy per
// layer is expected).
type HierarchyMismatch struct {
	Hierarchy int
	Layers    int
}

func (e *HierarchyMismatch) Error() string {
	return fmt.Sprintf("layer: expected %d hierarchies (one per layer), got %d", e.Layers, e.Hierarchy)
}

// HierarchyMisaligned is returned when a coarse level's group boundaries do
// not fall on a boundary of the next-finer level.
type HierarchyMisaligned struct {
	LayerIndex int
	Level      int
}

func (e *HierarchyMisaligned) Error() string {
	return fmt.Sprintf("layer: hierarchy at layer %d, level %d does not align with its finer level", e.LayerIndex, e.Level)
}

// HierarchySizeMismatch is returned when a hierarchy level's group sizes do
// not sum to the layer's node count.
type HierarchySizeMismatch struct {
	LayerIndex int
	Level      int
	Got        int
	Want       int
}

func (e *HierarchySizeMismatch) Error() string {
	return fmt.Sprintf("layer: hierarchy at layer %d, level %d has total size %d != node count %d", e.LayerIndex, e.Level, e.Got, e.Want)
}

// ReorderNodeGroups reorders a fine-grained sequence of node identifiers by
// permuting contiguous groups of it, given the (old) group sizes and the new
// group order. The groups keep their internal order; only their relative
// placement changes.
func ReorderNodeGroups[T comparable](nodes []T, groupSizes []int, newOrder []int) []T {
	out := make([]T, 0, len(nodes))
	for _, groupIndex := range newOrder {
		start := sumUpTo(groupSizes, groupIndex)
		size := groupSizes[groupIndex]
		out = append(out, nodes[start:start+size]...)
	}
	return out
}

func sumUpTo(sizes []int, n int) int {
	total := 0
	for _, s := range sizes[:n] {
		total += s
	}
	return total
}

// ReorderLevel permutes a level's group-size sequence according to
// newOrder, preserving length: the group that was at newOrder[i] becomes
// the group at position i.
func ReorderLevel(groupSizes []int, newOrder []int) []int {
	out := make([]int, len(newOrder))
	for i, idx := range newOrder {
		out[i] = groupSizes[idx]
	}
	return out
}

// ReorderFinerUnder reorders a finer level's group sizes to follow a
// permutation applied at a coarser level: for each coarse group index in
// newOrder (in its old position), the finer groups whose (old) byte range
// falls inside that coarse group are copied across in their original
// relative order.
func ReorderFinerUnder(coarse, finer []int, newOrder []int) []int {
	out := make([]int, 0, len(finer))
	for _, coarseIndex := range newOrder {
		coarseStart := sumUpTo(coarse, coarseIndex)
		coarseEnd := coarseStart + coarse[coarseIndex]

		fineStart := 0
		for _, size := range finer {
			if fineStart >= coarseStart && fineStart < coarseEnd {
				out = append(out, size)
			}
			fineStart += size
		}
	}
	return out
}

// ReorderHierarchy applies newOrder to the level at granularity (ordered
// fine to coarse, so granularity 0 is the finest) and regenerates every
// finer level via [ReorderFinerUnder]; coarser levels are left untouched.
func ReorderHierarchy(levels [][]int, granularity int, newOrder []int) [][]int {
	out := make([][]int, len(levels))
	for l := range levels {
		switch {
		case l > granularity:
			out[l] = levels[l]
		case l == granularity:
			out[l] = ReorderLevel(levels[l], newOrder)
		default:
			out[l] = ReorderFinerUnder(levels[granularity], levels[l], newOrder)
		}
	}
	return out
}

// GetBorders sweeps both group-size sequences and returns, for each coarse
// group in increasing order, the fine index at which that coarse group
// ends. It fails if a partial sum of the finer sequence never lands exactly
// on the current coarse partial sum.
func GetBorders(fine, coarse []int) ([]int, error) {
	borders := make([]int, 0, len(coarse))

	var coarseSize, fineSize int
	fineIndex := 0
	for _, groupSize := range coarse {
		coarseSize += groupSize
		for {
			if fineIndex >= len(fine) {
				return nil, ErrMisaligned
			}
			fineSize += fine[fineIndex]
			fineIndex++
			if fineSize == coarseSize {
				borders = append(borders, fineIndex-1)
				break
			}
			if fineSize > coarseSize {
				return nil, ErrMisaligned
			}
		}
	}
	return borders, nil
}

// ValidateHierarchy checks that every level of a layer's hierarchy sums to
// nodeCount and that each level's groups align with the next-finer level's
// prefix sums. An empty hierarchy (no grouping configured for this layer) is
// always valid.
func ValidateHierarchy(layerIndex, nodeCount int, hierarchy [][]int) error {
	if len(hierarchy) == 0 {
		return nil
	}

	for level := range hierarchy {
		size := 0
		for _, s := range hierarchy[level] {
			size += s
		}
		if size != nodeCount {
			return &HierarchySizeMismatch{LayerIndex: layerIndex, Level: level, Got: size, Want: nodeCount}
		}
		if level == 0 {
			continue
		}
		if _, err := GetBorders(hierarchy[level-1], hierarchy[level]); err != nil {
			return &HierarchyMisaligned{LayerIndex: layerIndex, Level: level}
		}
	}
	return nil
}
