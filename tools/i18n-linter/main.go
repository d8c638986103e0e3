// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale files against the i18n.T() calls
// in the Go sources. It reports message IDs used in code but missing from
// the primary locale, IDs missing from the other locales, orphaned IDs and
// translations whose fmt verbs differ from the primary text.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	verbRe    = regexp.MustCompile(`%[-+# 0]*\d*(?:\.\d+)?[a-zA-Z%]`)
)

// Report is the outcome of one lint run. All slices are sorted.
type Report struct {
	Undefined  []string            // used in code, absent from the primary locale
	Orphaned   []string            // in the primary locale, never used in code
	Missing    map[string][]string // locale file to IDs it lacks
	VerbErrors []string            // "<file>: <id>" where fmt verbs differ
}

// Failed reports whether the run found anything that breaks translations.
// Orphaned IDs are only a warning.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 || len(r.VerbErrors) > 0 {
		return true
	}
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	rep, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	section("Used in code but not in "+primaryLocale, rep.Undefined)
	section("Orphaned keys (in "+primaryLocale+" but not used in code)", rep.Orphaned)
	files := make([]string, 0, len(rep.Missing))
	for f := range rep.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		section("Missing in "+f, rep.Missing[f])
	}
	section("Format verbs differing from "+primaryLocale, rep.VerbErrors)

	switch {
	case rep.Failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(rep.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func section(title string, ids []string) {
	fmt.Printf("--- %s ---\n", title)
	if len(ids) == 0 {
		fmt.Println("  ✨ None found.")
	}
	for _, id := range ids {
		fmt.Printf("  - %s\n", id)
	}
	fmt.Println()
}

// lint compares the message IDs used under root with the locale files in
// dir, taking primary as the source of truth.
func lint(root, dir, primary string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("finding used keys: %w", err)
	}
	base, err := loadLocale(filepath.Join(dir, primary))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}
	localeFiles, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return Report{}, err
	}

	rep := Report{Missing: map[string][]string{}}
	for id := range used {
		if _, ok := base[id]; !ok {
			rep.Undefined = append(rep.Undefined, id)
		}
	}
	for id := range base {
		if _, ok := used[id]; !ok && id != "language.name" {
			rep.Orphaned = append(rep.Orphaned, id)
		}
	}

	for _, file := range localeFiles {
		name := filepath.Base(file)
		if name == primary {
			continue
		}
		other, err := loadLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", name, err)
		}
		var missing []string
		for id, text := range base {
			tr, ok := other[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			if !sameVerbs(text, tr) {
				rep.VerbErrors = append(rep.VerbErrors, name+": "+id)
			}
		}
		sort.Strings(missing)
		rep.Missing[name] = missing
	}

	sort.Strings(rep.Undefined)
	sort.Strings(rep.Orphaned)
	sort.Strings(rep.VerbErrors)
	return rep, nil
}

// findUsedKeys collects the literal IDs passed to i18n.T in non-test Go
// files. Directories starting with '_' or '.' and tools/ are skipped, the
// same ones the go tool ignores plus this linter.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadLocale reads a YAML locale file into a flat ID to text map.
func loadLocale(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flatten("", data, out)
	return out, nil
}

// flatten turns nested maps into dot-separated IDs.
func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			id := k
			if prefix != "" {
				id = prefix + "." + k
			}
			flatten(id, val, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// sameVerbs reports whether a and b carry the same fmt verbs in the same order.
func sameVerbs(a, b string) bool {
	va, vb := verbRe.FindAllString(a, -1), verbRe.FindAllString(b, -1)
	if len(va) != len(vb) {
		return false
	}
	for i := range va {
		if va[i] != vb[i] {
			return false
		}
	}
	return true
}
