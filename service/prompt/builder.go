package prompt

import (
	"fmt"
	"strings"

	"github.com/viant/qgen/model"
	"github.com/viant/qgen/service/apportion"
)

// kindSpec carries the prompt fragments that differ between kinds.
type kindSpec struct {
	noun    string
	extra   []string
	format  []string
	starter string
}

var kindSpecs = map[model.Kind]*kindSpec{
	model.KindChoice: {
		noun:    "multiple-choice",
		starter: "QUESTION:",
		format: []string{
			"QUESTION: [Question text appropriate to difficulty and cognitive level]",
			"ANSWER: [Correct answer]",
			"EXPLANATION: [Explanation of the correct answer and why it demonstrates the required cognitive level]",
			"DISTRACTOR1: [First incorrect option]",
			"DISTRACTOR2: [Second incorrect option]",
			"DISTRACTOR3: [Third incorrect option]",
		},
		extra: []string{
			"Include strong distractors that reflect common misconceptions",
		},
	},
	model.KindCloze: {
		noun:    "fill-in-the-blank",
		starter: "QUESTION:",
		format: []string{
			"QUESTION: [Statement with ________ for blanks, appropriate to difficulty and cognitive level]",
			"ANSWER: [Correct answer(s) that should fill the blank(s); if multiple blanks, list each answer separately]",
			"EXPLANATION: [Explanation of why this is the correct answer and how it demonstrates the required cognitive level]",
		},
		extra: []string{
			"Indicate each blank with \"________\" (8 underscores); a question may have multiple blanks",
			"Focus on important concepts from the material",
		},
	},
	model.KindTrueFalse: {
		noun:    "true/false",
		starter: "STATEMENT:",
		format: []string{
			"STATEMENT: [A clear statement that is either true or false, appropriate to difficulty and cognitive level]",
			"ANSWER: [Either \"TRUE\" or \"FALSE\" in all caps]",
			"EXPLANATION: [Explanation of why the statement is true or false, with reference to the material]",
		},
		extra: []string{
			"Avoid making statements true or false based on single words like \"always\" or \"never\"",
			"Aim for approximately 50% true and 50% false statements",
			"Make false statements plausible but clearly incorrect based on the material",
		},
	},
}

// Generation builds the single batched prompt covering a branch's whole
// quota. One backend call per branch is deliberate - the per-combination
// guideline blocks steer the mix inside that one response.
func Generation(kind model.Kind, summary string, total int, breakdown apportion.Breakdown) string {
	spec, ok := kindSpecs[kind]
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You are a professor writing sophisticated %v questions for an upper-level university course. The questions will be based on this chapter summary:\n\n", spec.noun)
	b.WriteString(summary)
	fmt.Fprintf(&b, "\n\nCreate exactly %d %v questions following these specific guidelines:\n", total, spec.noun)
	for _, group := range breakdown {
		fmt.Fprintf(&b, "\nFor %d questions at %v difficulty and %v cognitive level:\n", group.Count, strings.ToUpper(group.Difficulty), strings.ToUpper(group.Cognitive))
		fmt.Fprintf(&b, "- Difficulty: %v\n", DifficultyDescription(group.Difficulty))
		fmt.Fprintf(&b, "- Cognitive level guidelines: %v\n", CognitiveGuidelines(group.Cognitive, kind))
	}
	b.WriteString("\nIMPORTANT FORMATTING INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "- Start IMMEDIATELY with your first question using %q\n", spec.starter)
	b.WriteString("- DO NOT write ANY introductory text like \"Based on the chapter...\" or \"I'll create...\"\n")
	b.WriteString("- DO NOT include ANY preamble or explanation before the first question\n")
	for _, line := range spec.extra {
		fmt.Fprintf(&b, "- %v\n", line)
	}
	b.WriteString("\nEach question should:\n")
	b.WriteString("1. Match the specified difficulty and cognitive level\n")
	b.WriteString("2. Present scenarios appropriate to the cognitive level required\n")
	b.WriteString("3. Use domain-specific terminology accurately\n")
	b.WriteString("\nFormat each question exactly as follows:\n")
	for _, line := range spec.format {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\nDistribution of questions:\n")
	for _, group := range breakdown {
		fmt.Fprintf(&b, "- %v/%v: %d\n", group.Difficulty, group.Cognitive, group.Count)
	}
	b.WriteString("\nMake sure to vary the cognitive demands according to the levels specified.\n")
	return b.String()
}
