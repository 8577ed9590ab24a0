package wordbank

// defaultStopWords is the fixed list of common English function words
// excluded from the vocabulary regardless of length. It is data, not
// logic: swap it via NewWithStopWords without touching the filter.
var defaultStopWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i", "it", "for", "not", "on",
	"with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "we",
	"say", "her", "she", "or", "an", "will", "my", "one", "all", "would", "there", "their",
	"what", "so", "up", "out", "if", "about", "who", "get", "which", "go", "me", "when",
	"make", "can", "like", "time", "no", "just", "him", "know", "take", "people", "into",
	"year", "your", "good", "some", "could", "them", "see", "other", "than", "then", "now",
	"look", "only", "come", "its", "over", "think", "also", "back", "after", "use", "two",
	"how", "our", "work", "first", "well", "way", "even", "new", "want", "because", "any",
	"these", "give", "day", "most", "us", "is", "was", "are", "been", "has", "had", "were",
	"said", "did", "having", "may", "should", "am", "being", "does",
}

// DefaultStopWords returns a copy of the built-in stop-word list.
func DefaultStopWords() []string {
	out := make([]string, len(defaultStopWords))
	copy(out, defaultStopWords)
	return out
}
