package model

// Kind discriminates the supported question kinds. The values double as the
// wire/artifact discriminator, so they must stay stable.
type Kind string

const (
	// KindChoice is a multiple-choice question.
	KindChoice Kind = "mcq"
	// KindCloze is a fill-in-the-blank question.
	KindCloze Kind = "fib"
	// KindTrueFalse is a true/false statement.
	KindTrueFalse Kind = "tf"
)

// Kinds lists all supported kinds.
func Kinds() []Kind {
	return []Kind{KindChoice, KindCloze, KindTrueFalse}
}

// Valid reports whether the kind is one of the supported values.
func (k Kind) Valid() bool {
	switch k {
	case KindChoice, KindCloze, KindTrueFalse:
		return true
	}
	return false
}

// Item is a single generated record of any kind.
type Item interface {
	// ItemID returns the record's unique identifier.
	ItemID() string
	// ItemKind returns the kind discriminator.
	ItemKind() Kind
	// Assign sets the positional difficulty/cognitive-level labels.
	Assign(label Label)
}

// Meta carries the fields shared by every record kind. Difficulty and
// cognitive level stay empty when the label sequence was exhausted before the
// record was parsed.
type Meta struct {
	ID         string `json:"question_id"`
	Difficulty string `json:"difficulty"`
	Cognitive  string `json:"blooms_level"`
	Kind       Kind   `json:"question_type"`
}

// ItemID implements Item.
func (m *Meta) ItemID() string { return m.ID }

// ItemKind implements Item.
func (m *Meta) ItemKind() Kind { return m.Kind }

// Assign implements Item.
func (m *Meta) Assign(label Label) {
	m.Difficulty = label.Difficulty
	m.Cognitive = label.Cognitive
}

// Choice is a multiple-choice record: a stem, the correct answer, an
// explanation and up to three distractors.
type Choice struct {
	Meta
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Distractors []string `json:"distractors"`
}

// Cloze is a fill-in-the-blank record; Answers holds one entry per blank.
type Cloze struct {
	Meta
	Question    string   `json:"question"`
	Answers     []string `json:"answer"`
	Explanation string   `json:"explanation"`
}

// TrueFalse is a true/false record; Answer carries the backend's verdict as
// text (expected "TRUE" or "FALSE", preserved as received).
type TrueFalse struct {
	Meta
	Statement   string `json:"statement"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// ItemSet is the artifact payload envelope persisted per branch.
type ItemSet struct {
	Response []Item `json:"response"`
}

var _ Item = (*Choice)(nil)
var _ Item = (*Cloze)(nil)
var _ Item = (*TrueFalse)(nil)
