// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for cesar.
// It uses the go-i18n library to load and manage translation files, allowing the
// user interface to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is used when no language is configured.
const DefaultLang = "es"

var (
	mu sync.RWMutex
	// bundle stores all the loaded translation messages from the locale files.
	bundle *i18n.Bundle
	// localizer is used to translate messages into a specific language.
	localizer *i18n.Localizer
	// lang is the language passed to the last Init.
	lang string
	// locales lists the language codes found in localeFS.
	locales []string
)

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(l string) {
	if strings.TrimSpace(l) == "" {
		l = DefaultLang
	}

	b := i18n.NewBundle(language.Spanish)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	var found []string
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		found = append(found, strings.TrimSuffix(f.Name(), path.Ext(f.Name())))
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l)
	lang = l
	locales = found
}

// T is a convenience function to translate a message by its ID.
// If the i18n system has not been initialized, it will default to Spanish.
// Extra args are applied fmt-style to the translated text, except a single
// map argument, which is passed to the message template instead.
// If a translation for the given ID is not found, it returns the ID itself.
func T(messageID string, args ...any) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()
	if loc == nil {
		Init(DefaultLang)
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := loc.Localize(cfg)
	if err != nil {
		// If the message ID is not found, go-i18n returns an error.
		// In this case, we return the message ID itself as a fallback.
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// GetAvailableLocales maps each embedded language code to its display name
// (the `language.name` message of that locale).
func GetAvailableLocales() map[string]string {
	mu.RLock()
	b, codes := bundle, locales
	mu.RUnlock()
	if b == nil {
		Init(DefaultLang)
		mu.RLock()
		b, codes = bundle, locales
		mu.RUnlock()
	}

	out := make(map[string]string, len(codes))
	for _, code := range codes {
		name, err := i18n.NewLocalizer(b, code).Localize(&i18n.LocalizeConfig{MessageID: "language.name"})
		if err != nil {
			name = code
		}
		out[code] = name
	}
	return out
}
