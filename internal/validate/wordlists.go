package validate

// Closed wordlists backing the rule chain. These are injected into a Chain at
// construction so profiles and languages can vary without shared globals.

type wordlists struct {
	stopwords map[string]struct{}
	fillers   map[string]struct{}
	starters  map[string]struct{}
	morphemes map[string]struct{}
	generic   map[string]struct{}
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var englishWordlists = wordlists{
	stopwords: set(
		"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
		"at", "by", "for", "with", "about", "against", "between", "into",
		"through", "during", "before", "after", "above", "below", "from",
		"up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "once", "here", "there", "all", "any", "both", "each",
		"few", "such", "only", "own", "same", "so", "than", "too", "very",
		"can", "will", "just", "should", "now", "also", "may", "must",
		"shall", "this", "that", "these", "those", "is", "are", "was",
		"were", "be", "been", "being", "have", "has", "had", "do", "does",
		"did", "not", "no", "yes",
	),
	fillers: set(
		// articles
		"the", "a", "an",
		// demonstratives
		"this", "that", "these", "those",
		// question words
		"which", "what", "who", "whom", "whose", "when", "where", "why", "how",
		// comparatives
		"more", "most", "less", "least", "other", "another", "such",
	),
	starters: set(
		"and", "or", "but", "nor", "yet", "at", "in", "on", "for", "of",
		"to", "by", "with", "from", "as", "via", "per", "into", "onto",
		"within", "without", "between", "during", "because", "since",
		"while", "whereas", "although", "though", "unless", "therefore",
		"however", "thus", "hence",
	),
	morphemes: set(
		"tion", "sion", "ment", "ness", "ance", "ence", "ship", "hood",
		"ity", "ing", "ize", "ise", "ify", "able", "ible", "ful", "less",
		"ous", "ive", "est", "ern",
		"pre", "post", "dis", "mis", "non", "sub", "super", "inter",
		"intra", "trans", "semi", "anti", "auto", "micro", "macro",
		"multi", "poly", "mono", "bi", "tri", "re", "un", "de",
	),
	generic: set(
		"time", "air", "end", "start", "part", "way", "case", "type",
		"form", "side", "value", "number", "level", "point", "use",
		"data", "item", "thing", "area", "place", "size", "amount",
		"kind", "group", "set", "list", "page", "section", "chapter",
		"table", "figure", "example", "note", "step", "result", "work",
		"day", "year", "man", "woman", "people", "word", "name", "fact",
	),
}

var germanWordlists = wordlists{
	stopwords: set(
		"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen",
		"einem", "einer", "eines", "und", "oder", "aber", "wenn", "dann",
		"als", "auch", "auf", "aus", "bei", "bis", "durch", "für", "gegen",
		"in", "im", "ist", "sind", "war", "waren", "mit", "nach", "nicht",
		"noch", "nur", "ohne", "sehr", "so", "um", "unter", "von", "vom",
		"vor", "wie", "wird", "werden", "wurde", "zu", "zum", "zur", "über",
		"kann", "muss", "soll", "hat", "haben", "dass", "dieser", "diese",
		"dieses", "ja", "nein",
	),
	fillers: set(
		"der", "die", "das", "ein", "eine", "einen", "einem", "einer",
		"dieser", "diese", "dieses", "jener", "jene", "jenes",
		"welcher", "welche", "welches", "was", "wer", "wann", "wo",
		"warum", "wie",
		"mehr", "meist", "weniger", "andere", "anderer", "anderes",
	),
	starters: set(
		"und", "oder", "aber", "sondern", "denn", "an", "auf", "aus",
		"bei", "durch", "für", "gegen", "hinter", "in", "mit", "nach",
		"neben", "ohne", "seit", "um", "unter", "von", "vor", "während",
		"wegen", "zu", "zwischen", "weil", "obwohl", "daher", "deshalb",
		"jedoch", "also",
	),
	morphemes: set(
		"ung", "heit", "keit", "schaft", "tum", "nis", "chen", "lein",
		"lich", "isch", "bar", "haft", "sam", "los", "voll",
		"vor", "nach", "mit", "ab", "an", "auf", "aus", "bei", "ein",
		"ent", "er", "ge", "ver", "zer", "um", "un",
	),
	generic: set(
		"zeit", "luft", "ende", "anfang", "teil", "weg", "fall", "art",
		"form", "seite", "wert", "zahl", "ebene", "punkt", "nutzung",
		"daten", "ding", "sache", "bereich", "ort", "größe", "menge",
		"gruppe", "liste", "abschnitt", "kapitel", "tabelle",
		"abbildung", "beispiel", "hinweis", "schritt", "ergebnis",
		"arbeit", "tag", "jahr", "wort", "name",
	),
}

func wordlistsFor(language string) wordlists {
	switch language {
	case "de":
		return germanWordlists
	default:
		return englishWordlists
	}
}

// snowballLanguage maps our ISO codes onto the names the snowball stemmer
// expects.
func snowballLanguage(language string) string {
	switch language {
	case "de":
		return "german"
	default:
		return "english"
	}
}
