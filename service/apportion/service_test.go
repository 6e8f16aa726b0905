package apportion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/qgen/model"
)

func singleton(label string) model.Table {
	return model.Table{{Label: label, Value: 1.0}}
}

func TestAllocate(t *testing.T) {
	testCases := []struct {
		description string
		total       int
		kinds       model.Table
		difficulty  model.Table
		cognitive   model.Table
		expect      map[string]int
	}{
		{
			description: "exact split across kinds",
			total:       10,
			kinds:       model.Table{{Label: "mcq", Value: 0.4}, {Label: "fib", Value: 0.3}, {Label: "tf", Value: 0.3}},
			difficulty:  singleton("advanced"),
			cognitive:   singleton("analyze"),
			expect:      map[string]int{"mcq": 4, "fib": 3, "tf": 3},
		},
		{
			description: "remainder tie broken by input order",
			total:       7,
			kinds:       model.Table{{Label: "x", Value: 0.5}, {Label: "y", Value: 0.5}},
			difficulty:  singleton("basic"),
			cognitive:   singleton("remember"),
			expect:      map[string]int{"x": 4, "y": 3},
		},
		{
			description: "single entry tables",
			total:       3,
			kinds:       singleton("mcq"),
			difficulty:  singleton("basic"),
			cognitive:   singleton("remember"),
			expect:      map[string]int{"mcq": 3},
		},
	}

	for _, testCase := range testCases {
		allocation := Allocate(testCase.total, testCase.kinds, testCase.difficulty, testCase.cognitive)
		assert.EqualValues(t, testCase.total, allocation.Total(), testCase.description)
		actual := map[string]int{}
		for _, bucket := range allocation {
			actual[string(bucket.Kind)] += bucket.Count
			assert.True(t, bucket.Count > 0, testCase.description)
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestAllocateExactSum(t *testing.T) {
	kinds := model.Table{{Label: "mcq", Value: 0.4}, {Label: "fib", Value: 0.3}, {Label: "tf", Value: 0.3}}
	difficulty := model.Table{{Label: "basic", Value: 0.3}, {Label: "intermediate", Value: 0.3}, {Label: "advanced", Value: 0.4}}
	cognitive := model.Table{{Label: "remember", Value: 0.3}, {Label: "apply", Value: 0.4}, {Label: "analyze", Value: 0.3}}
	for total := 0; total <= 100; total++ {
		allocation := Allocate(total, kinds, difficulty, cognitive)
		assert.EqualValues(t, total, allocation.Total(), "total=%d", total)
	}
}

func TestAllocateEdgeCases(t *testing.T) {
	kinds := model.Table{{Label: "mcq", Value: 1.0}}
	assert.Empty(t, Allocate(0, kinds, kinds, kinds))
	assert.Empty(t, Allocate(10, nil, kinds, kinds))
	assert.Empty(t, Allocate(10, kinds, nil, kinds))

	// drifted weights are used as-is, the sum invariant still holds
	drifted := model.Table{{Label: "a", Value: 0.33}, {Label: "b", Value: 0.33}, {Label: "c", Value: 0.33}}
	allocation := Allocate(9, drifted, singleton("d"), singleton("c"))
	assert.EqualValues(t, 9, allocation.Total())
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		description string
		total       int
		difficulty  model.Table
		cognitive   model.Table
		expectTotal int
		expect      map[string]int
	}{
		{
			description: "even split",
			total:       10,
			difficulty:  model.Table{{Label: "basic", Value: 0.5}, {Label: "advanced", Value: 0.5}},
			cognitive:   singleton("apply"),
			expectTotal: 10,
			expect:      map[string]int{"basic/apply": 5, "advanced/apply": 5},
		},
		{
			description: "drift repaired on largest group",
			total:       5,
			difficulty:  model.Table{{Label: "basic", Value: 0.3}, {Label: "advanced", Value: 0.7}},
			cognitive:   singleton("analyze"),
			expectTotal: 5,
			// round(1.5)=2, round(3.5)=4 => sum 6, largest loses the excess
			expect: map[string]int{"basic/analyze": 2, "advanced/analyze": 3},
		},
		{
			description: "all-zero rounding falls back to largest weight",
			total:       1,
			difficulty:  model.Table{{Label: "basic", Value: 0.5}, {Label: "advanced", Value: 0.5}},
			cognitive:   model.Table{{Label: "remember", Value: 0.5}, {Label: "apply", Value: 0.5}},
			expectTotal: 1,
			expect:      map[string]int{"basic/remember": 1},
		},
	}

	for _, testCase := range testCases {
		breakdown := Split(testCase.total, testCase.difficulty, testCase.cognitive)
		assert.EqualValues(t, testCase.expectTotal, breakdown.Total(), testCase.description)
		actual := map[string]int{}
		for _, group := range breakdown {
			actual[group.Difficulty+"/"+group.Cognitive] = group.Count
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestSplitDiffersFromAllocate(t *testing.T) {
	// The two call sites use different tie policies on purpose: Allocate
	// hands single remainder units to the highest fractions, Split rounds
	// and then repairs the whole drift on one group.
	difficulty := model.Table{{Label: "basic", Value: 0.5}, {Label: "advanced", Value: 0.5}}
	cognitive := singleton("apply")

	breakdown := Split(7, difficulty, cognitive)
	counts := map[string]int{}
	for _, group := range breakdown {
		counts[group.Difficulty] = group.Count
	}
	// round(3.5) twice yields 4+4, the leftover -1 lands on the first
	// largest group
	assert.EqualValues(t, map[string]int{"basic": 3, "advanced": 4}, counts)

	allocation := Allocate(7, singleton("mcq"), difficulty, cognitive)
	joint := map[string]int{}
	for _, bucket := range allocation {
		joint[bucket.Difficulty] = bucket.Count
	}
	// floor(3.5) twice leaves one unit, input order wins the tie
	assert.EqualValues(t, map[string]int{"basic": 4, "advanced": 3}, joint)
}

func TestSequence(t *testing.T) {
	breakdown := Breakdown{
		{Difficulty: "basic", Cognitive: "remember", Count: 2},
		{Difficulty: "advanced", Cognitive: "analyze", Count: 1},
	}
	sequence := Sequence(breakdown)
	assert.EqualValues(t, []model.Label{
		{Difficulty: "basic", Cognitive: "remember"},
		{Difficulty: "basic", Cognitive: "remember"},
		{Difficulty: "advanced", Cognitive: "analyze"},
	}, sequence)
	assert.Empty(t, Sequence(nil))
}
