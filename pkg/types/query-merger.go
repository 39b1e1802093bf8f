package types

// QueryMerger combines per-facet constraints into one result.
// Semantics:
//
//	First Add with a non-nil result -> seed result with that set.
//	Subsequent Adds -> result = result ∩ next
//	Add returning nil -> no restriction.
//
// Constraints are evaluated in call order on the calling goroutine.
type QueryMerger struct {
	isFirst bool
	result  *ItemList
}

func NewQueryMerger(result *ItemList) *QueryMerger {
	return &QueryMerger{
		isFirst: true,
		result:  result,
	}
}

func (m *QueryMerger) Add(getResult func() *ItemList) {
	// once the result is empty no later constraint can add to it
	if !m.isFirst && m.result.IsEmpty() {
		return
	}
	items := getResult()
	if items == nil {
		return
	}
	if m.isFirst {
		m.result.Merge(items)
		m.isFirst = false
		return
	}
	m.result.Intersect(*items)
}

// Constrained reports whether any Add narrowed the result.
func (m *QueryMerger) Constrained() bool {
	return !m.isFirst
}
