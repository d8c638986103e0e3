// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for code, name := range map[string]string{"en": "English", "es": "Español"} {
		if av[code] != name {
			t.Fatalf("expected locale %q named %q, got %q", code, name, av[code])
		}
	}
}

func TestInit_EmptyUsesDefault(t *testing.T) {
	Init("  ")
	if GetLang() != DefaultLang {
		t.Fatalf("expected default lang %q, got %q", DefaultLang, GetLang())
	}
	if got := T("properties.key"); got != "Clave" {
		t.Fatalf("expected Spanish text, got %q", got)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("menu.exit"); got != "Exit" {
		t.Fatalf("expected 'Exit', got %q", got)
	}

	// fmt-style formatting via non-map args
	if got := T("cli.score", 37); got != "Score: 37" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("es")
	if GetLang() != "es" {
		t.Fatalf("expected lang 'es', got %q", GetLang())
	}
	if got := T("menu.exit"); got != "Salir" {
		t.Fatalf("expected Spanish 'Salir', got %q", got)
	}
	if got := T("form.key_range", 60); got != "La clave debe estar entre 0 y 60" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
}

func TestT_UnknownLanguageFallsBack(t *testing.T) {
	Init("fr")
	if got := T("menu.exit"); got != "Salir" {
		t.Fatalf("unknown language should use the Spanish bundle default, got %q", got)
	}
}

func TestT_MissingIDReturnsID(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}
