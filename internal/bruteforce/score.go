// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package bruteforce

import (
	"strings"
	"unicode/utf8"

	"github.com/cesarkit/cesar/internal/dictionary"
)

const (
	// PointsPerLetter is awarded per letter of a primary dictionary word.
	PointsPerLetter = 2
	// CommonWordBonus is the flat bonus for a common short word.
	CommonWordBonus = 3
)

// Scorer ranks candidate plaintexts by dictionary coverage.
type Scorer struct {
	dict *dictionary.Dictionary
}

// NewScorer returns a scorer over dict. A nil dict uses dictionary.Default.
func NewScorer(dict *dictionary.Dictionary) *Scorer {
	if dict == nil {
		dict = dictionary.Default()
	}
	return &Scorer{dict: dict}
}

// Breakdown is the detailed outcome of scoring one text.
type Breakdown struct {
	Score      int
	ValidWords int
	Tokens     int
}

// Score returns the total score of text.
func (s *Scorer) Score(text string) int {
	return s.Analyze(text).Score
}

// Analyze scores text and also reports how many tokens were recognised.
// A token found in both word sets earns both rewards but is one valid word.
func (s *Scorer) Analyze(text string) Breakdown {
	var b Breakdown
	for _, tok := range splitWhitespace(text) {
		w := CleanToken(tok)
		if w == "" {
			continue
		}
		b.Tokens++
		word, common := s.dict.IsWord(w), s.dict.IsCommon(w)
		if word {
			b.Score += PointsPerLetter * utf8.RuneCountInString(w)
		}
		if common {
			b.Score += CommonWordBonus
		}
		if word || common {
			b.ValidWords++
		}
	}
	return b
}

// ScoreText scores text against the default dictionary.
func ScoreText(text string) int {
	return defaultScorer.Score(text)
}

var defaultScorer = NewScorer(nil)

// CleanToken lower-cases tok, then drops every rune that is not an ASCII
// letter or one of the Spanish accented vowels and eñe. Lower-casing first
// keeps runes that fold to an ASCII letter, such as the Kelvin sign.
func CleanToken(tok string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(tok) {
		if isWordLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'Á', 'É', 'Í', 'Ó', 'Ú', 'ñ', 'Ñ':
		return true
	}
	return false
}

// splitWhitespace splits on runs of ASCII whitespace only, so that other
// separators stay inside a token and are removed by CleanToken.
func splitWhitespace(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	})
}
