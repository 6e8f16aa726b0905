package parser

import (
	"strings"

	"github.com/viant/parsly"
)

const ordinalCode = 1

// ordinalToken matches a leading "N. " list numbering prefix.
var ordinalToken = parsly.NewToken(ordinalCode, "Ordinal", &ordinalMatcher{})

// ordinalMatcher matches one or more digits followed by a dot and a space.
type ordinalMatcher struct{}

// Match implements parsly.Matcher.
func (m *ordinalMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	i := pos
	for i < size && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	if i == pos {
		return 0
	}
	if i+1 >= size || input[i] != '.' || input[i+1] != ' ' {
		return 0
	}
	return i + 2 - pos
}

// splitAnswers turns the raw answer-list text into one answer per non-empty
// line, stripping a leading "N. " numbering prefix when present.
func splitAnswers(text string) []string {
	ret := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cursor := parsly.NewCursor("", []byte(line), 0)
		if matched := cursor.MatchOne(ordinalToken); matched.Code == ordinalToken.Code {
			ret = append(ret, strings.TrimSpace(line[cursor.Pos:]))
			continue
		}
		ret = append(ret, line)
	}
	return ret
}
