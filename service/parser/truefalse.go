package parser

import (
	"strings"

	"github.com/viant/qgen/internal/idgen"
	"github.com/viant/qgen/model"
)

// trueFalse parses true/false responses: one statement, a TRUE/FALSE verdict
// and an explanation per STATEMENT: segment.
type trueFalse struct{}

// Kind implements Parser.
func (p *trueFalse) Kind() model.Kind { return model.KindTrueFalse }

// Parse implements Parser.
func (p *trueFalse) Parse(text string, sequence []model.Label) []model.Item {
	var ret []model.Item
	for i, segment := range segments(text, statementDelimiter) {
		item := &model.TrueFalse{
			Meta: model.Meta{ID: idgen.New(), Kind: model.KindTrueFalse},
		}
		rest := segment
		answerFound := false
		if before, after, ok := strings.Cut(rest, answerMarker); ok {
			item.Statement = strings.TrimSpace(before)
			rest = after
			answerFound = true
		}
		if before, after, ok := strings.Cut(rest, explanationMarker); ok {
			if answerFound {
				item.Answer = strings.TrimSpace(before)
			}
			item.Explanation = strings.TrimSpace(after)
		} else if answerFound {
			// no explanation - the verdict runs to the end of the segment
			item.Answer = strings.TrimSpace(rest)
		}
		item.Assign(labelAt(sequence, i))
		ret = append(ret, item)
	}
	return ret
}
