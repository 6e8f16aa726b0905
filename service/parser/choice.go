package parser

import (
	"strings"

	"github.com/viant/qgen/internal/idgen"
	"github.com/viant/qgen/model"
)

var distractorMarkers = []string{"DISTRACTOR1:", "DISTRACTOR2:", "DISTRACTOR3:"}

// choice parses multiple-choice responses: stem, correct answer, explanation
// and up to three distractors per QUESTION: segment.
type choice struct{}

// Kind implements Parser.
func (p *choice) Kind() model.Kind { return model.KindChoice }

// Parse implements Parser.
func (p *choice) Parse(text string, sequence []model.Label) []model.Item {
	var ret []model.Item
	for i, segment := range segments(text, questionDelimiter) {
		item := &model.Choice{
			Meta:        model.Meta{ID: idgen.New(), Kind: model.KindChoice},
			Distractors: []string{},
		}
		rest := segment
		answerFound := false
		if before, after, ok := strings.Cut(rest, answerMarker); ok {
			item.Question = strings.TrimSpace(before)
			rest = after
			answerFound = true
		}
		if before, after, ok := strings.Cut(rest, explanationMarker); ok {
			// the answer field requires both markers; text before a lone
			// EXPLANATION: belongs to the stem region, not the answer
			if answerFound {
				item.Answer = strings.TrimSpace(before)
			}
			item.Explanation = strings.TrimSpace(after)
			if idx := strings.Index(after, distractorMarkers[0]); idx != -1 {
				item.Explanation = strings.TrimSpace(after[:idx])
			}
			rest = after
		}
		for j, marker := range distractorMarkers {
			_, after, ok := strings.Cut(rest, marker)
			if !ok {
				continue
			}
			value := after
			if j+1 < len(distractorMarkers) {
				if before, _, ok := strings.Cut(after, distractorMarkers[j+1]); ok {
					value = before
				}
			}
			item.Distractors = append(item.Distractors, strings.TrimSpace(value))
			rest = after
		}
		item.Assign(labelAt(sequence, i))
		ret = append(ret, item)
	}
	return ret
}
