package parser

import (
	"strings"

	"github.com/viant/qgen/internal/idgen"
	"github.com/viant/qgen/model"
)

// cloze parses fill-in-the-blank responses. The answer field may list one
// answer per blank, optionally numbered; numbering is stripped per line.
type cloze struct{}

// Kind implements Parser.
func (p *cloze) Kind() model.Kind { return model.KindCloze }

// Parse implements Parser.
func (p *cloze) Parse(text string, sequence []model.Label) []model.Item {
	var ret []model.Item
	for i, segment := range segments(text, questionDelimiter) {
		item := &model.Cloze{
			Meta:    model.Meta{ID: idgen.New(), Kind: model.KindCloze},
			Answers: []string{},
		}
		rest := segment
		answerFound := false
		if before, after, ok := strings.Cut(rest, answerMarker); ok {
			item.Question = strings.TrimSpace(before)
			rest = after
			answerFound = true
		}
		if before, after, ok := strings.Cut(rest, explanationMarker); ok {
			if answerFound {
				item.Answers = splitAnswers(before)
			}
			item.Explanation = strings.TrimSpace(after)
		}
		item.Assign(labelAt(sequence, i))
		ret = append(ret, item)
	}
	return ret
}
