// Package catalog holds the compiled-in diagnostic content: the six team
// factors with their Likert questions, and the contextual fields collected
// at the start of a survey. The content is static; nothing is loaded at
// run time. One catalog serves every locale: texts are parameterized by
// language tag instead of duplicating the data per language.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Likert answer domain.
const (
	LikertMin = 1
	LikertMax = 5
)

// QuestionsPerFactor is fixed across the catalog.
const QuestionsPerFactor = 5

// Role identifies which survey variant a person takes.
type Role string

const (
	RoleLeader       Role = "leader"
	RoleCollaborator Role = "collaborator"
)

// ParseRole validates a role string coming from a cookie or request.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(s))) {
	case RoleLeader:
		return RoleLeader, nil
	case RoleCollaborator:
		return RoleCollaborator, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Question is a single Likert prompt. IDs are unique across all factors.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Factor groups five questions around one team dimension.
type Factor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// FieldType distinguishes free text from numeric context inputs.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
)

// ContextField is one contextual prompt answered once at survey start.
type ContextField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder"`
	Type        FieldType `json:"type"`
}

var supportedLocales = []language.Tag{
	language.English, // default
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// MatchLocale resolves an Accept-Language style string to a supported
// locale. Anything unrecognized falls back to English.
func MatchLocale(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := localeMatcher.Match(tags...)
	return supportedLocales[idx]
}

// Factors returns the ordered factor list for a locale. Callers get a
// fresh slice; the underlying content never changes.
func Factors(loc language.Tag) []Factor {
	src := factorsEN
	if loc == language.Spanish {
		src = factorsES
	}
	out := make([]Factor, len(src))
	for i, f := range src {
		qs := make([]Question, len(f.Questions))
		copy(qs, f.Questions)
		f.Questions = qs
		out[i] = f
	}
	return out
}

// FactorCount reports how many factor pages a survey has.
func FactorCount() int { return len(factorsEN) }

// QuestionIDs returns every question id in catalog order.
func QuestionIDs() []string {
	ids := make([]string, 0, len(factorsEN)*QuestionsPerFactor)
	for _, f := range factorsEN {
		for _, q := range f.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// ContextFields returns the ordered context prompts for a role.
func ContextFields(role Role, loc language.Tag) []ContextField {
	var src []ContextField
	switch role {
	case RoleCollaborator:
		src = collaboratorContextEN
		if loc == language.Spanish {
			src = collaboratorContextES
		}
	default:
		src = leaderContextEN
		if loc == language.Spanish {
			src = leaderContextES
		}
	}
	out := make([]ContextField, len(src))
	copy(out, src)
	return out
}

// LikertLabels returns the five scale anchors, lowest first.
func LikertLabels(loc language.Tag) []string {
	src := likertLabelsEN
	if loc == language.Spanish {
		src = likertLabelsES
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
