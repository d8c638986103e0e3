// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cipher implements the shift substitution (Caesar) cipher over a
// fixed, ordered alphabet. Characters outside the alphabet are copied
// unchanged by both Encrypt and Decrypt.
package cipher

// DefaultSymbols is the ordered symbol set used by the default alphabet:
// upper case letters, lower case letters, space and a few punctuation marks.
const DefaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	" .,:;!?\"'"

// Alphabet is an immutable ordered set of symbols. A symbol's position is
// the index used for shifting.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

var defaultAlphabet = NewAlphabet(DefaultSymbols)

// Default returns the process-wide default alphabet.
func Default() *Alphabet {
	return defaultAlphabet
}

// NewAlphabet builds an alphabet from the runes of symbols. If a symbol is
// repeated only its first position is ever reported by Index.
func NewAlphabet(symbols string) *Alphabet {
	a := &Alphabet{
		symbols: []rune(symbols),
		index:   make(map[rune]int, len(symbols)),
	}
	for i, r := range a.symbols {
		if _, seen := a.index[r]; !seen {
			a.index[r] = i
		}
	}
	return a
}

// Len returns the number of symbols, which is also the number of distinct keys.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Index returns the position of r, or false if r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// At returns the symbol at position i modulo Len.
func (a *Alphabet) At(i int) rune {
	return a.symbols[a.normalize(i)]
}

// Symbols returns a copy of the ordered symbols.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

// normalize maps any integer into [0, Len).
func (a *Alphabet) normalize(k int) int {
	n := len(a.symbols)
	if n == 0 {
		return 0
	}
	k %= n
	if k < 0 {
		k += n
	}
	return k
}
