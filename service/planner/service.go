package planner

import (
	"github.com/viant/qgen/model"
)

// Plan groups the joint allocation by kind, preserving first-seen order, and
// builds one branch plan per kind. Branch totals partition the allocation
// total without loss; the per-branch tables are marginal per-axis weights
// (count over branch total), accumulated independently for each axis.
func Plan(allocation model.Allocation) []*model.Plan {
	var ret []*model.Plan
	index := map[model.Kind]*model.Plan{}
	for _, bucket := range allocation {
		plan, ok := index[bucket.Kind]
		if !ok {
			plan = &model.Plan{Kind: bucket.Kind}
			index[bucket.Kind] = plan
			ret = append(ret, plan)
		}
		plan.Total += bucket.Count
	}
	for _, bucket := range allocation {
		plan := index[bucket.Kind]
		branchTotal := float64(plan.Total)
		plan.Difficulty = accumulate(plan.Difficulty, bucket.Difficulty, float64(bucket.Count)/branchTotal)
		plan.Cognitive = accumulate(plan.Cognitive, bucket.Cognitive, float64(bucket.Count)/branchTotal)
	}
	return ret
}

// accumulate adds share to the label's weight, appending the label in
// first-seen order when absent.
func accumulate(table model.Table, label string, share float64) model.Table {
	for i := range table {
		if table[i].Label == label {
			table[i].Value += share
			return table
		}
	}
	return append(table, model.Weight{Label: label, Value: share})
}
