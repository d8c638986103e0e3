// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"strings"
	"unicode/utf8"
)

// Encrypt shifts every alphabet symbol of text forward by key positions.
// Keys outside [0, Len) are reduced modulo Len.
func (a *Alphabet) Encrypt(text string, key int) string {
	return a.shift(text, key)
}

// Decrypt shifts every alphabet symbol of text back by key positions. It is
// the exact inverse of Encrypt for the same key.
func (a *Alphabet) Decrypt(text string, key int) string {
	return a.shift(text, -key)
}

func (a *Alphabet) shift(text string, by int) string {
	if len(a.symbols) == 0 {
		return text
	}
	by = a.normalize(by)
	if by == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if i, ok := a.index[r]; ok && (r != utf8.RuneError || size > 1) {
			b.WriteRune(a.symbols[(i+by)%len(a.symbols)])
		} else {
			// invalid UTF-8 bytes are copied as-is
			b.WriteString(text[:size])
		}
		text = text[size:]
	}
	return b.String()
}

// Encrypt encrypts text with the default alphabet.
func Encrypt(text string, key int) string {
	return defaultAlphabet.Encrypt(text, key)
}

// Decrypt decrypts text with the default alphabet.
func Decrypt(text string, key int) string {
	return defaultAlphabet.Decrypt(text, key)
}

// AlphabetLength returns the size of the default alphabet.
func AlphabetLength() int {
	return defaultAlphabet.Len()
}
