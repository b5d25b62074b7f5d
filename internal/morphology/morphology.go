// Package morphology explains the grammatical tag attached to an interlinear
// word. Two tag conventions occur in the seed data:
//
//   - compact codes, e.g. "V-AAI-3S" or "N-DSF"
//   - readable tags, e.g. "Noun - Dative Feminine Singular"
//
// Parse never fails; anything it cannot decode becomes an Unknown annotation
// that echoes the raw tag.
package morphology

import (
	"strings"
	"unicode"
)

type PartOfSpeech string

const (
	Noun        PartOfSpeech = "Noun"
	Verb        PartOfSpeech = "Verb"
	Adjective   PartOfSpeech = "Adjective"
	Pronoun     PartOfSpeech = "Pronoun"
	Article     PartOfSpeech = "Article"
	Preposition PartOfSpeech = "Preposition"
	Conjunction PartOfSpeech = "Conjunction"
	Unknown     PartOfSpeech = "Unknown"
)

// IsNominal reports whether the part of speech declines for case, gender and number.
func (p PartOfSpeech) IsNominal() bool {
	return p == Noun || p == Adjective || p == Pronoun || p == Article
}

type Form string

const (
	FormCompact  Form = "compact"
	FormReadable Form = "readable"
)

// Detail is one decoded attribute, e.g. {Case, Dative, "Indirect object..."}.
type Detail struct {
	Term        string `json:"term"`
	Value       string `json:"value"`
	Explanation string `json:"explanation"`
}

type Annotation struct {
	Raw          string       `json:"raw"`
	Form         Form         `json:"form,omitempty"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech"`
	Icon         string       `json:"icon"`
	Color        string       `json:"color"`
	Summary      string       `json:"summary"`
	Details      []Detail     `json:"details"`
}

// Value returns the decoded value for a term such as TermCase, or "".
func (a Annotation) Value(termName string) string {
	for _, d := range a.Details {
		if d.Term == termName {
			return d.Value
		}
	}
	return ""
}

// IsUnknown reports whether the tag could not be decoded.
func (a Annotation) IsUnknown() bool {
	return a.PartOfSpeech == Unknown
}

// Parse decodes a morphology tag in either convention.
func Parse(tag string) Annotation {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return unknown(tag)
	}
	segments := splitSegments(trimmed)
	if isCompactHead(segments[0]) {
		return parseCompact(tag, segments)
	}
	return parseReadable(tag, segments)
}

func splitSegments(s string) []string {
	parts := strings.Split(s, "-")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		segments = append(segments, strings.TrimSpace(p))
	}
	return segments
}

func isCompactHead(s string) bool {
	return len(s) == 1 && unicode.IsLetter(rune(s[0]))
}

func unknown(raw string) Annotation {
	cat := categories[Unknown]
	return Annotation{
		Raw:          raw,
		PartOfSpeech: Unknown,
		Icon:         cat.icon,
		Color:        cat.color,
		Summary:      raw,
		Details:      []Detail{},
	}
}

// builder accumulates decoded attributes and renders them in display order:
// gender, number, case for nominals and tense, voice, mood, person+number for
// verbs. Participles decline, so they take gender, number, case instead.
type builder struct {
	pos        PartOfSpeech
	gender     *term
	number     *term
	kase       *term
	tense      *term
	voice      *term
	mood       *term
	person     *term
	secondForm bool
}

func (b *builder) annotation(raw string, form Form) Annotation {
	cat := categories[b.pos]
	a := Annotation{
		Raw:          raw,
		Form:         form,
		PartOfSpeech: b.pos,
		Icon:         cat.icon,
		Color:        cat.color,
		Details:      []Detail{},
	}

	var summary []string
	add := func(name string, t *term) {
		if t == nil {
			return
		}
		explanation := t.explanation
		if name == TermTense && b.secondForm {
			explanation += " (second form)"
		}
		a.Details = append(a.Details, Detail{Term: name, Value: t.value, Explanation: explanation})
		switch name {
		case TermPerson:
			summary = append(summary, t.value+" Person")
		default:
			summary = append(summary, t.value)
		}
	}

	switch {
	case b.pos == Verb && b.kase == nil:
		add(TermTense, b.tense)
		add(TermVoice, b.voice)
		add(TermMood, b.mood)
		add(TermPerson, b.person)
		add(TermNumber, b.number)
	case b.pos == Verb:
		add(TermTense, b.tense)
		add(TermVoice, b.voice)
		add(TermMood, b.mood)
		add(TermGender, b.gender)
		add(TermNumber, b.number)
		add(TermCase, b.kase)
	case b.pos.IsNominal():
		add(TermPerson, b.person)
		add(TermGender, b.gender)
		add(TermNumber, b.number)
		add(TermCase, b.kase)
	}

	a.Summary = strings.Join(summary, " ")
	if a.Summary == "" {
		a.Summary = string(b.pos)
	}
	return a
}

func ptr(t term, ok bool) *term {
	if !ok {
		return nil
	}
	return &t
}
