package provider

// LookupResult is the structured dictionary entry returned by an AI
// word-lookup provider.
type LookupResult struct {
	Word         string
	PartOfSpeech string
	Definition   string
	Example      string
	Difficulty   string
	RelatedWords []string
}
