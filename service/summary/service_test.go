package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters(t *testing.T) {
	available := Keys{DefaultScopeKey, ObjectivesKey}

	testCases := []struct {
		description string
		request     *Request
		available   Keys
		expect      int
		operator    Operator
	}{
		{
			description: "scope only",
			request:     &Request{ScopeID: "ch01"},
			available:   available,
			expect:      1,
		},
		{
			description: "single objective uses eq",
			request:     &Request{ScopeID: "ch01", Objectives: []string{"lo1"}},
			available:   available,
			expect:      2,
			operator:    OperatorEqual,
		},
		{
			description: "multiple objectives use in",
			request:     &Request{ScopeID: "ch01", Objectives: []string{"lo1", "lo2"}},
			available:   available,
			expect:      2,
			operator:    OperatorIn,
		},
		{
			description: "objectives skipped when index lacks the key",
			request:     &Request{ScopeID: "ch01", Objectives: []string{"lo1"}},
			available:   Keys{DefaultScopeKey},
			expect:      1,
		},
	}

	for _, testCase := range testCases {
		filters := Filters(testCase.request, testCase.available)
		if !assert.EqualValues(t, testCase.expect, len(filters), testCase.description) {
			continue
		}
		assert.EqualValues(t, DefaultScopeKey, filters[0].Key, testCase.description)
		assert.EqualValues(t, OperatorEqual, filters[0].Operator, testCase.description)
		if testCase.expect > 1 {
			assert.EqualValues(t, testCase.operator, filters[1].Operator, testCase.description)
		}
	}
}

func TestQuery(t *testing.T) {
	available := Keys{ObjectivesKey}
	assert.Contains(t, Query(&Request{ScopeID: "ch02"}, available), "chapter ch02")
	withObjectives := Query(&Request{ScopeID: "ch02", Objectives: []string{"lo1", "lo2"}}, available)
	assert.Contains(t, withObjectives, "lo1, lo2")
	withoutKey := Query(&Request{ScopeID: "ch02", Objectives: []string{"lo1"}}, nil)
	assert.NotContains(t, withoutKey, "lo1")
}
