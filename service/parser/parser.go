package parser

import (
	"fmt"
	"strings"

	"github.com/viant/qgen/model"
)

// Field markers shared by the kind parsers.
const (
	questionDelimiter  = "QUESTION:"
	statementDelimiter = "STATEMENT:"
	answerMarker       = "ANSWER:"
	explanationMarker  = "EXPLANATION:"
)

// Parser parses one branch's raw response into typed records, labelling each
// record positionally from the supplied sequence. Records beyond the sequence
// length keep empty labels.
type Parser interface {
	Kind() model.Kind
	Parse(text string, sequence []model.Label) []model.Item
}

// New returns the parser for the supplied kind.
func New(kind model.Kind) (Parser, error) {
	switch kind {
	case model.KindChoice:
		return &choice{}, nil
	case model.KindCloze:
		return &cloze{}, nil
	case model.KindTrueFalse:
		return &trueFalse{}, nil
	}
	return nil, fmt.Errorf("unsupported question kind: %q", kind)
}

// segments splits text on the segment delimiter, discards the preamble before
// the first delimiter and drops whitespace-only segments.
func segments(text, delimiter string) []string {
	parts := strings.Split(text, delimiter)
	if len(parts) <= 1 {
		return nil
	}
	var ret []string
	for _, part := range parts[1:] {
		if part = strings.TrimSpace(part); part != "" {
			ret = append(ret, part)
		}
	}
	return ret
}

// labelAt returns the positional label for record index i, empty when the
// sequence is exhausted.
func labelAt(sequence []model.Label, i int) model.Label {
	if i < len(sequence) {
		return sequence[i]
	}
	return model.Label{}
}
