package highlights

import "sort"

// Vocabulary is a case-sensitive set of terms matched against recognizer tokens.
type Vocabulary map[string]struct{}

func NewVocabulary(terms ...string) Vocabulary {
	v := make(Vocabulary, len(terms))
	for _, t := range terms {
		if t == "" {
			continue
		}
		v[t] = struct{}{}
	}
	return v
}

func (v Vocabulary) Contains(term string) bool {
	_, ok := v[term]
	return ok
}

// With returns a copy of v extended by terms.
func (v Vocabulary) With(terms ...string) Vocabulary {
	out := make(Vocabulary, len(v)+len(terms))
	for t := range v {
		out[t] = struct{}{}
	}
	for _, t := range terms {
		if t != "" {
			out[t] = struct{}{}
		}
	}
	return out
}

// Terms returns the vocabulary sorted.
func (v Vocabulary) Terms() []string {
	out := make([]string, 0, len(v))
	for t := range v {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// DefaultVocabulary returns a fresh copy of the built-in soccer commentary
// vocabulary. Multi-word entries never match a single recognizer token; they
// are kept so custom tokenizers that join phrases can use them.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(soccerTerms...).With(excitementTerms...).With(intensifierTerms...)
}

// Match vocabulary: techniques, set pieces and officiating.
var soccerTerms = []string{
	"advantage", "angle", "backheel", "boot", "boundary", "box", "buildup",
	"bursts", "chip", "clearance", "combo", "crossbar", "cutback", "deflection",
	"dink", "direct", "disallowed", "dive", "dummies", "dummy", "flick",
	"follow-through", "footwork", "formation", "ghost goal", "header", "hook",
	"indirect", "injury", "inswinging", "juggle", "knuckleball", "lead",
	"lofted", "long ball", "marking", "nutmeg", "offside", "one-two",
	"outfield", "overhead", "panenka", "penalty", "pitch", "possession",
	"precision", "pressure", "pull-back", "punch", "quick feet", "rabona",
	"rebound", "redirect", "rhythm", "roster", "scissor kick", "shootout",
	"sliding tackle", "spin", "spin shot", "sprint", "stoppage", "strike",
	"swing", "tap-in", "through ball", "timewasting", "top corner", "touchline",
	"trickery", "turnover", "ultimate", "volley", "winger", "zonal",
}

// Commentary adjectives.
var excitementTerms = []string{
	"amazing", "awesome", "beautiful", "breathtaking", "brilliant",
	"celebration", "climactic", "dramatic", "electric", "epic", "exciting",
	"explosive", "fantastic", "feisty", "ferocious", "fierce", "fiery",
	"flawless", "forceful", "formidable", "frenzied", "glorious", "gritty",
	"heroic", "impressive", "incendiary", "incredible", "intense",
	"jaw-dropping", "legendary", "magnificent", "majestic", "marvelous",
	"mesmerizing", "mighty", "momentous", "monumental", "outstanding",
	"passionate", "penalty", "powerful", "riveting", "scintillating",
	"sensational", "spectacular", "speedy", "splendid", "stunning", "superb",
	"supreme", "surprising", "tantalizing", "tense", "terrific", "thrilling",
	"thunderous", "top-class", "triumphant", "unbelievable", "unforgettable",
	"unstoppable", "vibrant", "victorious", "vigorous", "wonderful", "zealous",
}

// Commentary adverbs.
var intensifierTerms = []string{
	"amazingly", "brilliantly", "dazzlingly", "dramatically", "excitingly",
	"exhilaratingly", "extraordinarily", "fantastically", "fiercely",
	"gloriously", "gracefully", "heroically", "impressively", "incredibly",
	"intensely", "majestically", "mind-blowing", "phenomenally", "remarkably",
	"rivetingly", "spectacularly", "stupendously", "surprisingly",
	"thrillingly", "unbelievably", "unforgettably",
}
