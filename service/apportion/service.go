package apportion

import (
	"math"
	"sort"

	"github.com/viant/qgen/model"
)

// Allocate splits total jointly across the cross-product of the three supplied
// tables using the largest-remainder method. Every combination receives the
// floor of its exact share; the leftover units are handed out one each to the
// combinations with the largest fractional remainders, ties broken by table
// iteration order (kinds outer, then difficulty, then cognitive level). The
// returned allocation always sums to total exactly; zero-count combinations
// are dropped. Weights are used as supplied - no renormalisation happens at
// this layer.
func Allocate(total int, kinds, difficulty, cognitive model.Table) model.Allocation {
	if total <= 0 || len(kinds) == 0 || len(difficulty) == 0 || len(cognitive) == 0 {
		return nil
	}
	type candidate struct {
		bucket *model.Bucket
		frac   float64
	}
	var candidates []*candidate
	floorSum := 0
	for _, k := range kinds {
		for _, d := range difficulty {
			for _, c := range cognitive {
				exact := float64(total) * k.Value * d.Value * c.Value
				count := int(math.Floor(exact))
				floorSum += count
				candidates = append(candidates, &candidate{
					bucket: &model.Bucket{
						Kind:       model.Kind(k.Label),
						Difficulty: d.Label,
						Cognitive:  c.Label,
						Count:      count,
					},
					frac: exact - float64(count),
				})
			}
		}
	}

	// Hand out the remainder by descending fractional part; the stable sort
	// keeps input order between equal fractions.
	remainder := total - floorSum
	ranked := make([]*candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].frac > ranked[j].frac
	})
	for i := 0; i < remainder && i < len(ranked); i++ {
		ranked[i].bucket.Count++
	}

	var ret model.Allocation
	for _, c := range candidates {
		if c.bucket.Count > 0 {
			ret = append(ret, c.bucket)
		}
	}
	return ret
}

// Group is one entry of a branch-level breakdown: the quota for a single
// (difficulty, cognitive level) pair within one branch.
type Group struct {
	Difficulty string
	Cognitive  string
	Count      int
}

// Breakdown is the ordered two-axis sub-allocation of a single branch.
type Breakdown []*Group

// Total returns the sum of all group counts.
func (b Breakdown) Total() int {
	var ret int
	for _, g := range b {
		ret += g.Count
	}
	return ret
}

// Largest returns the group with the highest count, first-seen on ties, or
// nil for an empty breakdown.
func (b Breakdown) Largest() *Group {
	var ret *Group
	for _, g := range b {
		if ret == nil || g.Count > ret.Count {
			ret = g
		}
	}
	return ret
}

// Split divides a branch total across the two supplied axes. Unlike Allocate
// it rounds each exact share to the nearest integer, drops zero groups and
// then repairs any drift by adding the (possibly negative) difference to the
// single largest group. This is a distinct, historical tie policy - do not
// replace it with the remainder sort used by Allocate.
//
// When rounding zeroes out every group the whole total goes to the
// combination with the largest weight product instead.
func Split(total int, difficulty, cognitive model.Table) Breakdown {
	if total <= 0 || len(difficulty) == 0 || len(cognitive) == 0 {
		return nil
	}
	var ret Breakdown
	for _, d := range difficulty {
		for _, c := range cognitive {
			count := int(math.Round(float64(total) * d.Value * c.Value))
			if count > 0 {
				ret = append(ret, &Group{Difficulty: d.Label, Cognitive: c.Label, Count: count})
			}
		}
	}
	if len(ret) == 0 {
		d, c := largestProduct(difficulty, cognitive)
		return Breakdown{{Difficulty: d, Cognitive: c, Count: total}}
	}
	if delta := total - ret.Total(); delta != 0 {
		ret.Largest().Count += delta
	}
	return ret
}

// largestProduct returns the pair of labels with the highest joint weight,
// first-seen on ties.
func largestProduct(difficulty, cognitive model.Table) (string, string) {
	var retD, retC string
	best := -1.0
	for _, d := range difficulty {
		for _, c := range cognitive {
			if product := d.Value * c.Value; product > best {
				best = product
				retD, retC = d.Label, c.Label
			}
		}
	}
	return retD, retC
}

// Sequence expands the breakdown into the positional label sequence consumed
// while labelling parsed records: each group contributes Count consecutive
// copies of its label pair, in breakdown order.
func Sequence(breakdown Breakdown) []model.Label {
	var ret []model.Label
	for _, g := range breakdown {
		for i := 0; i < g.Count; i++ {
			ret = append(ret, model.Label{Difficulty: g.Difficulty, Cognitive: g.Cognitive})
		}
	}
	return ret
}
