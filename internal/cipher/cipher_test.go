// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"strings"
	"testing"
)

var samples = []string{
	"",
	"ABC",
	"Hola, mundo! \"Esto\" es una prueba: sí; no?",
	"el perro y la gata",
	"línea uno\nlínea dos\tcon tab 123 ✓ 🙂",
	"xyz qwerty",
	string([]byte{0xff, 'a', 0xfe}),
}

func TestDefaultAlphabet(t *testing.T) {
	if got := AlphabetLength(); got != 61 {
		t.Fatalf("expected 61 symbols, got %d", got)
	}
	a := Default()
	if i, ok := a.Index('A'); !ok || i != 0 {
		t.Fatalf("expected 'A' at index 0, got %d (ok=%v)", i, ok)
	}
	if i, ok := a.Index('a'); !ok || i != 26 {
		t.Fatalf("expected 'a' at index 26, got %d (ok=%v)", i, ok)
	}
	if i, ok := a.Index(' '); !ok || i != 52 {
		t.Fatalf("expected space at index 52, got %d (ok=%v)", i, ok)
	}
	if i, ok := a.Index('\''); !ok || i != 60 {
		t.Fatalf("expected apostrophe at index 60, got %d (ok=%v)", i, ok)
	}
	if _, ok := a.Index('1'); ok {
		t.Fatalf("digits must not be part of the alphabet")
	}
	seen := map[rune]bool{}
	for _, r := range a.Symbols() {
		if seen[r] {
			t.Fatalf("symbol %q appears twice", r)
		}
		seen[r] = true
	}
}

func TestEncryptDecrypt_Scenario(t *testing.T) {
	if got := Encrypt("ABC", 1); got != "BCD" {
		t.Fatalf("Encrypt(ABC, 1) = %q, want BCD", got)
	}
	if got := Decrypt("BCD", 1); got != "ABC" {
		t.Fatalf("Decrypt(BCD, 1) = %q, want ABC", got)
	}
	// wrap-around from the last symbol to the first
	if got := Encrypt("'", 1); got != "A" {
		t.Fatalf("Encrypt(', 1) = %q, want A", got)
	}
	if got := Decrypt("A", 1); got != "'" {
		t.Fatalf("Decrypt(A, 1) = %q, want '", got)
	}
	// 'Z' + 1 lands on 'a', 'z' + 1 on space
	if got := Encrypt("Zz", 1); got != "a " {
		t.Fatalf("Encrypt(Zz, 1) = %q, want %q", got, "a ")
	}
}

func TestInverseLaw_AllKeys(t *testing.T) {
	n := AlphabetLength()
	for k := 0; k < n; k++ {
		for _, s := range samples {
			if got := Decrypt(Encrypt(s, k), k); got != s {
				t.Fatalf("key %d: Decrypt(Encrypt(%q)) = %q", k, s, got)
			}
		}
	}
}

func TestIdentityKey(t *testing.T) {
	for _, s := range samples {
		if got := Encrypt(s, 0); got != s {
			t.Fatalf("Encrypt(%q, 0) = %q", s, got)
		}
		if got := Decrypt(s, 0); got != s {
			t.Fatalf("Decrypt(%q, 0) = %q", s, got)
		}
	}
}

func TestNonAlphabetPassThrough(t *testing.T) {
	const outside = "0123456789\t\n🙂ñáé@#$%&*()-_=+[]{}<>/\\|~`^"
	n := AlphabetLength()
	for k := 0; k < n; k++ {
		if got := Encrypt(outside, k); got != outside {
			t.Fatalf("key %d: Encrypt changed non-alphabet text: %q", k, got)
		}
		if got := Decrypt(outside, k); got != outside {
			t.Fatalf("key %d: Decrypt changed non-alphabet text: %q", k, got)
		}
	}

	mixed := "a1b2"
	if got := Encrypt(mixed, 1); got != "b1c2" {
		t.Fatalf("Encrypt(%q, 1) = %q, want b1c2", mixed, got)
	}
}

func TestKeyNormalization(t *testing.T) {
	n := AlphabetLength()
	for _, k := range []int{n, n + 5, -1, -n - 3, 10 * n} {
		want := Encrypt("Hola mundo", ((k%n)+n)%n)
		if got := Encrypt("Hola mundo", k); got != want {
			t.Fatalf("key %d: got %q, want %q", k, got, want)
		}
		if got := Decrypt(Encrypt("Hola mundo", k), k); got != "Hola mundo" {
			t.Fatalf("key %d: round trip failed: %q", k, got)
		}
	}
}

func TestNewAlphabet_FirstOccurrenceWins(t *testing.T) {
	a := NewAlphabet("ABCA")
	if a.Len() != 4 {
		t.Fatalf("expected length 4, got %d", a.Len())
	}
	if i, _ := a.Index('A'); i != 0 {
		t.Fatalf("expected first occurrence (0), got %d", i)
	}
	// 'A' is looked up at 0 and shifted by 3 to position 3, which is 'A' again.
	if got := a.Encrypt("A", 3); got != "A" {
		t.Fatalf("Encrypt(A, 3) = %q, want A", got)
	}
	if got := a.Encrypt("B", 1); got != "C" {
		t.Fatalf("Encrypt(B, 1) = %q, want C", got)
	}
}

func TestEmptyAlphabet(t *testing.T) {
	a := NewAlphabet("")
	if got := a.Encrypt("abc", 4); got != "abc" {
		t.Fatalf("empty alphabet must pass everything through, got %q", got)
	}
}

func TestAtAndString(t *testing.T) {
	a := Default()
	if a.At(0) != 'A' || a.At(-1) != '\'' || a.At(a.Len()) != 'A' {
		t.Fatalf("unexpected At results")
	}
	if !strings.HasPrefix(a.String(), "ABC") || a.String() != DefaultSymbols {
		t.Fatalf("unexpected String(): %q", a.String())
	}
}
