package seeder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// Entry is one record of the JSON word-list file.
type Entry struct {
	Word         string   `json:"word"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags"`
}

// ParseReport summarizes a word-list parse.
type ParseReport struct {
	Read       int
	Invalid    int
	Duplicates int
}

// LoadWordList reads a JSON word-list file (a top-level array of entries)
// and returns the valid, deduplicated words as base catalog rows.
// Invalid entries and repeats of an already-seen normalized text are
// counted in the report and skipped, never fatal.
func LoadWordList(path string) ([]domain.Word, ParseReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseReport{}, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return parseWordList(f)
}

func parseWordList(r io.Reader) ([]domain.Word, ParseReport, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, ParseReport{}, fmt.Errorf("decode word list: %w", err)
	}

	var report ParseReport
	report.Read = len(entries)

	seen := make(map[string]bool, len(entries))
	words := make([]domain.Word, 0, len(entries))

	for _, e := range entries {
		w, err := e.toBaseWord()
		if err != nil {
			report.Invalid++
			continue
		}
		if seen[w.TextNormalized] {
			report.Duplicates++
			continue
		}
		seen[w.TextNormalized] = true
		words = append(words, w)
	}

	return words, report, nil
}

// toBaseWord validates the entry and converts it to a base catalog word
// (nil UserID, zeroed counters).
func (e Entry) toBaseWord() (domain.Word, error) {
	text := domain.NormalizeText(e.Word)
	if text == "" {
		return domain.Word{}, fmt.Errorf("empty word")
	}

	pos := domain.PartOfSpeech(e.PartOfSpeech)
	if !pos.IsValid() {
		return domain.Word{}, fmt.Errorf("invalid part of speech %q", e.PartOfSpeech)
	}

	if e.Definition == "" {
		return domain.Word{}, fmt.Errorf("missing definition")
	}

	difficulty := domain.DifficultyMedium
	if e.Difficulty != "" {
		difficulty = domain.Difficulty(e.Difficulty)
		if !difficulty.IsValid() {
			return domain.Word{}, fmt.Errorf("invalid difficulty %q", e.Difficulty)
		}
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return domain.Word{
		Text:           e.Word,
		TextNormalized: text,
		PartOfSpeech:   pos,
		Definition:     e.Definition,
		Example:        e.Example,
		Difficulty:     difficulty,
		Tags:           tags,
	}, nil
}
