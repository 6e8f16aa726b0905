package model

// Bucket is a single joint-allocation entry: the exact integer quota for one
// (kind, difficulty, cognitive level) combination. Buckets are created once
// by the apportionment engine and never mutated afterwards.
type Bucket struct {
	Kind       Kind   `json:"kind"`
	Difficulty string `json:"difficulty"`
	Cognitive  string `json:"cognitive"`
	Count      int    `json:"count"`
}

// Allocation is the joint quota across all three axes, in deterministic
// order (kind outer, difficulty, then cognitive level, as the input tables
// were iterated). Zero-count combinations are dropped.
type Allocation []*Bucket

// Total returns the sum of all bucket counts.
func (a Allocation) Total() int {
	var ret int
	for _, b := range a {
		ret += b.Count
	}
	return ret
}

// Kinds returns the distinct kinds present in the allocation, in
// first-seen order.
func (a Allocation) Kinds() []Kind {
	var ret []Kind
	seen := map[Kind]bool{}
	for _, b := range a {
		if seen[b.Kind] {
			continue
		}
		seen[b.Kind] = true
		ret = append(ret, b.Kind)
	}
	return ret
}

// Plan is one branch's unit of work: the aggregated quota for a single
// question kind together with the marginal difficulty and cognitive-level
// tables renormalised over the branch total. The marginal form is a
// deliberate per-axis accumulation (not a joint re-derivation); downstream
// prompt text is built from it.
type Plan struct {
	Kind       Kind  `json:"kind"`
	Total      int   `json:"total"`
	Difficulty Table `json:"difficulty"`
	Cognitive  Table `json:"cognitive"`
}

// Label is one (difficulty, cognitive level) assignment consumed positionally
// while labelling parsed records.
type Label struct {
	Difficulty string `json:"difficulty"`
	Cognitive  string `json:"cognitive"`
}
