package smaz

// defaultTerms is the built-in dictionary. A term's position in this list is
// its codeword, so reordering, inserting or removing entries makes previously
// compressed data undecodable.
var defaultTerms = [...]string{
	" ", "the", "e", "t", "a", "of", "o", "and", "i", "n", "s", "e ", "r", " th", " t",
	"in", "he", "th", "h", "he ", "to", "l", "s ", "d", " a", "an", "er", "c", " o", "d ",
	"on", " of", "re", "of ", "t ", ", ", "is", "u", "at", "   ", "n ", "or", "which", "f",
	"m", "as", "it", "that", "was", "en", "  ", " w", "es", " an", " i", "f ", "g", "p",
	"nd", " s", "nd ", "ed ", "w", "ed", "http://", "https://", "for", "te", "ing", "y ",
	"The", " c", "ti", "r ", "his", "st", " in", "ar", "nt", ",", " to", "y", "ng", " h",
	"with", "le", "al", "to ", "b", "ou", "be", "were", " b", "se", "o ", "ent", "ha",
	"ng ", "their", "\"", "hi", "from", " f", "in ", "de", "ion", "me", "v", ".", "ve",
	"all", "re ", "ri", "ro", "is ", "co", "f t", "are", "ea", ". ", "her", " m", "er ",
	" p", "es ", "by", "they", "di", "ra", "ic", "not", "s, ", "d t", "at ", "ce", "la",
	"h ", "ne", "as ", "tio", "on ", "n t", "io", "we", " a ", "om", ", a", "s o", "ur",
	"li", "ll", "ch", "had", "this", "e t", "g ", " wh", "ere", " co", "e o", "a ", "us",
	" d", "ss", " be", " e", "s a", "ma", "one", "t t", "or ", "but", "el", "so", "l ",
	"e s", "s,", "no", "ter", " wa", "iv", "ho", "e a", " r", "hat", "s t", "ns", "ch ",
	"wh", "tr", "ut", "/", "have", "ly ", "ta", " ha", " on", "tha", "-", " l", "ati",
	"en ", "pe", " re", "there", "ass", "si", " fo", "wa", "ec", "our", "who", "its", "z",
	"fo", "rs", "ot", "un", "im", "th ", "nc", "ate", "ver", "ad", "html", "xhtml", " we",
	"ly", "ee", " n", "id", " cl", "ac", "il", "rt", " wi", "e, ", " it", "whi", " ma",
	"ge", "x", "e c", "men", ".com", "rdf", "rdfs",
}

// DefaultTerms returns a copy of the built-in dictionary's terms, in codeword
// order.
func DefaultTerms() []string {
	terms := make([]string, len(defaultTerms))
	copy(terms, defaultTerms[:])
	return terms
}
