package morphology

import "strings"

// parseCompact decodes positional codes: a part-of-speech letter followed by
// hyphen-separated groups of single-letter codes.
//
//	N-DSF     noun: case, number, gender
//	P-1NS     pronoun: optional person digit, then case, number
//	V-AAI-3S  verb: tense, voice, mood; person, number
//	V-PAP-NSM participle: tense, voice, mood; case, number, gender
//	V-2AAI-3P second aorist
func parseCompact(raw string, segments []string) Annotation {
	pos, ok := compactCodes[strings.ToUpper(segments[0])]
	if !ok {
		return unknown(raw)
	}

	b := &builder{pos: pos}
	groups := make([]string, 0, len(segments)-1)
	for _, g := range segments[1:] {
		if g != "" {
			groups = append(groups, strings.ToUpper(g))
		}
	}

	switch {
	case pos == Verb:
		decodeVerb(b, groups)
	case pos.IsNominal() && len(groups) > 0:
		decodeNominal(b, groups[0])
	}
	return b.annotation(raw, FormCompact)
}

func decodeNominal(b *builder, code string) {
	if code != "" && code[0] >= '1' && code[0] <= '3' {
		b.person = ptr(byCode(persons, code[:1]))
		code = code[1:]
	}
	decodeCaseNumberGender(b, code)
}

func decodeCaseNumberGender(b *builder, code string) {
	if len(code) > 0 {
		b.kase = ptr(byCode(cases, code[0:1]))
	}
	if len(code) > 1 {
		b.number = ptr(byCode(numbers, code[1:2]))
	}
	if len(code) > 2 {
		b.gender = ptr(byCode(genders, code[2:3]))
	}
}

func decodeVerb(b *builder, groups []string) {
	if len(groups) == 0 {
		return
	}

	code := groups[0]
	if strings.HasPrefix(code, "2") {
		b.secondForm = true
		code = code[1:]
	}
	if len(code) > 0 {
		b.tense = ptr(byCode(tenses, code[0:1]))
	}
	if len(code) > 1 {
		b.voice = ptr(byCode(voices, code[1:2]))
	}
	if len(code) > 2 {
		b.mood = ptr(byCode(moods, code[2:3]))
	}

	if len(groups) < 2 {
		return
	}
	inflection := groups[1]
	if b.mood != nil && b.mood.code == "P" {
		decodeCaseNumberGender(b, inflection)
		return
	}
	if len(inflection) > 0 {
		b.person = ptr(byCode(persons, inflection[0:1]))
	}
	if len(inflection) > 1 {
		b.number = ptr(byCode(numbers, inflection[1:2]))
	}
}
