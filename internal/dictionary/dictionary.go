// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package dictionary holds the word lists used to judge whether a decrypted
// candidate reads like real text. It ships an embedded Spanish list and can
// be extended with a plain-text word file at startup.
package dictionary

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// wordFS embeds the YAML word lists from the 'words' directory.
//
//go:embed words/*.yaml
var wordFS embed.FS

// DefaultLanguage names the embedded word list returned by Default.
const DefaultLanguage = "es"

// Dictionary is a read-only pair of word sets. Primary words are the target
// language vocabulary; common words are short stopwords that earn a flat
// bonus. A word may belong to both.
type Dictionary struct {
	primary map[string]struct{}
	common  map[string]struct{}
}

// wordList is the on-disk YAML layout.
type wordList struct {
	Primary []string `yaml:"primary"`
	Common  []string `yaml:"common"`
}

var defaultDictionary = mustLoadEmbedded(DefaultLanguage)

// Default returns the embedded Spanish dictionary.
func Default() *Dictionary {
	return defaultDictionary
}

func mustLoadEmbedded(lang string) *Dictionary {
	data, err := wordFS.ReadFile("words/" + lang + ".yaml")
	if err != nil {
		panic(fmt.Sprintf("dictionary: embedded word list %q missing: %v", lang, err))
	}
	d, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("dictionary: embedded word list %q invalid: %v", lang, err))
	}
	return d
}

// New builds a dictionary from explicit word sets.
func New(primary, common []string) *Dictionary {
	d := &Dictionary{
		primary: make(map[string]struct{}, len(primary)),
		common:  make(map[string]struct{}, len(common)),
	}
	addAll(d.primary, primary)
	addAll(d.common, common)
	return d
}

// Load parses a YAML document with `primary` and `common` lists.
func Load(data []byte) (*Dictionary, error) {
	var wl wordList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	return New(wl.Primary, wl.Common), nil
}

// WithWords returns a copy of d whose primary set also contains words.
func (d *Dictionary) WithWords(words ...string) *Dictionary {
	out := &Dictionary{
		primary: make(map[string]struct{}, len(d.primary)+len(words)),
		common:  d.common,
	}
	for w := range d.primary {
		out.primary[w] = struct{}{}
	}
	addAll(out.primary, words)
	return out
}

// IsWord reports whether w is in the primary set.
func (d *Dictionary) IsWord(w string) bool {
	_, ok := d.primary[w]
	return ok
}

// IsCommon reports whether w is in the common short word set.
func (d *Dictionary) IsCommon(w string) bool {
	_, ok := d.common[w]
	return ok
}

// Len returns the number of distinct primary words.
func (d *Dictionary) Len() int {
	return len(d.primary)
}

// CommonLen returns the number of distinct common words.
func (d *Dictionary) CommonLen() int {
	return len(d.common)
}

// ReadWords reads one word per line. Blank lines and lines starting with
// '#' are ignored; words are lower-cased.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadWordFile reads a plain-text word list from path.
func LoadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

func addAll(set map[string]struct{}, words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
}
