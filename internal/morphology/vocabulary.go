package morphology

// term is a single grammatical value with its compact code and the English
// spelling used by readable tags.
type term struct {
	code        string
	value       string
	explanation string
}

// Grammatical categories, as used in Detail.Term.
const (
	TermCase   = "Case"
	TermGender = "Gender"
	TermNumber = "Number"
	TermTense  = "Tense"
	TermVoice  = "Voice"
	TermMood   = "Mood"
	TermPerson = "Person"
)

// Candidate lists are ordered for readable-form substring matching: a value
// that contains another (Imperfect/Perfect, Middle or Passive/Passive) comes
// first.
var (
	cases = []term{
		{"N", "Nominative", "Subject of the sentence"},
		{"G", "Genitive", "Possession or source, usually rendered \"of\""},
		{"D", "Dative", "Indirect object, usually rendered \"to\" or \"for\""},
		{"A", "Accusative", "Direct object of the action"},
		{"V", "Vocative", "Direct address"},
	}

	genders = []term{
		{"M", "Masculine", "Masculine grammatical gender"},
		{"F", "Feminine", "Feminine grammatical gender"},
		{"N", "Neuter", "Neuter grammatical gender"},
	}

	numbers = []term{
		{"S", "Singular", "One person or thing"},
		{"P", "Plural", "More than one person or thing"},
	}

	tenses = []term{
		{"L", "Pluperfect", "Completed action whose results existed in the past"},
		{"I", "Imperfect", "Continuous or repeated action in the past"},
		{"R", "Perfect", "Completed action with continuing results"},
		{"P", "Present", "Ongoing action, usually in the present"},
		{"F", "Future", "Action that will take place"},
		{"A", "Aorist", "Action viewed as a simple whole, usually past"},
	}

	voices = []term{
		{"N", "Middle or Passive Deponent", "Middle or passive form with active meaning"},
		{"E", "Middle or Passive", "Form shared by the middle and passive voice"},
		{"D", "Middle Deponent", "Middle form with active meaning"},
		{"O", "Passive Deponent", "Passive form with active meaning"},
		{"M", "Middle", "Subject acts on or for itself"},
		{"P", "Passive", "Subject receives the action"},
		{"A", "Active", "Subject performs the action"},
	}

	moods = []term{
		{"I", "Indicative", "Statement of fact"},
		{"S", "Subjunctive", "Possibility or purpose"},
		{"O", "Optative", "Wish or remote possibility"},
		{"M", "Imperative", "Command or request"},
		{"N", "Infinitive", "Verbal noun, \"to ...\""},
		{"P", "Participle", "Verbal adjective, \"...ing\""},
	}

	persons = []term{
		{"1", "1st", "The speaker, \"I\" or \"we\""},
		{"2", "2nd", "The one spoken to, \"you\""},
		{"3", "3rd", "The one spoken about, \"he\", \"she\", \"it\" or \"they\""},
	}
)

// readablePersons maps spelled-out person phrases onto the persons table.
// Checked in order; the first phrase found wins.
var readablePersons = []struct {
	phrase string
	code   string
}{
	{"first person", "1"},
	{"second person", "2"},
	{"third person", "3"},
}

func byCode(table []term, code string) (term, bool) {
	for _, t := range table {
		if t.code == code {
			return t, true
		}
	}
	return term{}, false
}

type category struct {
	pos   PartOfSpeech
	icon  string
	color string
}

var categories = map[PartOfSpeech]category{
	Noun:        {Noun, "cube", "blue"},
	Verb:        {Verb, "bolt", "red"},
	Adjective:   {Adjective, "paintbrush", "green"},
	Pronoun:     {Pronoun, "person", "purple"},
	Article:     {Article, "textformat", "gray"},
	Preposition: {Preposition, "arrow.right", "orange"},
	Conjunction: {Conjunction, "link", "teal"},
	Unknown:     {Unknown, "questionmark", "gray"},
}

var compactCodes = map[string]PartOfSpeech{
	"N": Noun,
	"V": Verb,
	"A": Adjective,
	"P": Pronoun,
	"D": Article,
	"C": Conjunction,
	"R": Preposition,
}

var readableNames = map[string]PartOfSpeech{
	"noun":        Noun,
	"verb":        Verb,
	"adjective":   Adjective,
	"pronoun":     Pronoun,
	"article":     Article,
	"preposition": Preposition,
	"conjunction": Conjunction,
}
