package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/qgen/model"
	"github.com/viant/qgen/service/apportion"
)

func TestGeneration(t *testing.T) {
	breakdown := apportion.Breakdown{
		{Difficulty: "basic", Cognitive: "remember", Count: 2},
		{Difficulty: "advanced", Cognitive: "analyze", Count: 1},
	}

	testCases := []struct {
		description string
		kind        model.Kind
		contains    []string
	}{
		{
			description: "choice prompt",
			kind:        model.KindChoice,
			contains: []string{
				"Create exactly 3 multiple-choice questions",
				"DISTRACTOR3:",
				"For 2 questions at BASIC difficulty and REMEMBER cognitive level",
				"- basic/remember: 2",
				"\"QUESTION:\"",
			},
		},
		{
			description: "cloze prompt",
			kind:        model.KindCloze,
			contains: []string{
				"Create exactly 3 fill-in-the-blank questions",
				"________",
				"- advanced/analyze: 1",
			},
		},
		{
			description: "true/false prompt",
			kind:        model.KindTrueFalse,
			contains: []string{
				"Create exactly 3 true/false questions",
				"\"STATEMENT:\"",
				"50% true and 50% false",
			},
		},
	}

	for _, testCase := range testCases {
		actual := Generation(testCase.kind, "the summary body", 3, breakdown)
		assert.True(t, strings.Contains(actual, "the summary body"), testCase.description)
		for _, fragment := range testCase.contains {
			assert.Truef(t, strings.Contains(actual, fragment), "%v: missing %q", testCase.description, fragment)
		}
	}

	assert.Empty(t, Generation("essay", "s", 1, breakdown))
}

func TestDifficultyDescription(t *testing.T) {
	assert.NotEmpty(t, DifficultyDescription("basic"))
	assert.EqualValues(t, "appropriate college-level understanding", DifficultyDescription("unknown"))
}

func TestCognitiveGuidelines(t *testing.T) {
	for _, kind := range model.Kinds() {
		for _, cognitive := range []string{"remember", "apply", "analyze"} {
			assert.NotEqualValues(t, "appropriate cognitive level thinking", CognitiveGuidelines(cognitive, kind))
		}
	}
	assert.EqualValues(t, "appropriate cognitive level thinking", CognitiveGuidelines("invent", model.KindChoice))
}
