package morphology

import "strings"

// parseReadable decodes tags such as "Noun - Dative Feminine Singular" or
// "Verb - Aorist Active Indicative - 3rd Person Singular". The first segment
// names the part of speech; the remaining segments are searched for known
// grammatical terms.
func parseReadable(raw string, segments []string) Annotation {
	pos, ok := readableNames[strings.ToLower(segments[0])]
	if !ok {
		return unknown(raw)
	}

	b := &builder{pos: pos}
	rest := strings.ToLower(strings.Join(segments[1:], " "))

	switch {
	case pos == Verb:
		if strings.Contains(rest, "second aorist") || strings.Contains(rest, "2nd aorist") {
			b.secondForm = true
			rest = strings.NewReplacer("second aorist", "aorist", "2nd aorist", "aorist").Replace(rest)
		}
		b.tense = matchTerm(rest, tenses)
		b.voice = matchTerm(rest, voices)
		b.mood = matchTerm(rest, moods)
		if b.mood != nil && b.mood.code == "P" {
			b.kase = matchTerm(rest, cases)
			b.gender = matchTerm(rest, genders)
		} else {
			b.person = matchPerson(rest)
		}
		b.number = matchTerm(rest, numbers)
	case pos.IsNominal():
		b.kase = matchTerm(rest, cases)
		b.gender = matchTerm(rest, genders)
		b.number = matchTerm(rest, numbers)
		if pos == Pronoun {
			b.person = matchPerson(rest)
		}
	}
	return b.annotation(raw, FormReadable)
}

// matchTerm returns the first table entry whose English value occurs in text.
func matchTerm(text string, table []term) *term {
	for _, t := range table {
		if strings.Contains(text, strings.ToLower(t.value)) {
			return ptr(t, true)
		}
	}
	return nil
}

func matchPerson(text string) *term {
	if t := matchTerm(text, persons); t != nil {
		return t
	}
	for _, p := range readablePersons {
		if strings.Contains(text, p.phrase) {
			return ptr(byCode(persons, p.code))
		}
	}
	return nil
}
