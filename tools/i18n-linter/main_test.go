// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadLocale_FlattensNestedKeys(t *testing.T) {
	p := filepath.Join(t.TempDir(), "en.yaml")
	writeFile(t, p, "menu.exit: \"Exit\"\nform:\n  key: \"Key\"\n")

	got, err := loadLocale(p)
	if err != nil {
		t.Fatalf("loadLocale: %v", err)
	}
	want := map[string]string{"menu.exit": "Exit", "form.key": "Key"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}

func TestLint_ReportsProblems(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f() {
	_ = i18n.T("menu.exit")
	_ = i18n.T("cli.score", 3)
	_ = i18n.T("form.unknown")
}`)
	writeFile(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
var _ = i18n.T("only.in.tests")`)
	writeFile(t, filepath.Join(root, "_examples", "x.go"), `package x
var _ = i18n.T("ignored.key")`)

	dir := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(dir, "en.yaml"), "language.name: \"English\"\nmenu.exit: \"Exit\"\ncli.score: \"Score: %d\"\nstale.key: \"Old\"\n")
	writeFile(t, filepath.Join(dir, "es.yaml"), "language.name: \"Español\"\nmenu.exit: \"Salir\"\ncli.score: \"Puntuación: %s\"\n")

	rep, err := lint(root, dir, "en.yaml")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	want := Report{
		Undefined:  []string{"form.unknown"},
		Orphaned:   []string{"stale.key"},
		Missing:    map[string][]string{"es.yaml": {"stale.key"}},
		VerbErrors: []string{"es.yaml: cli.score"},
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
	if !rep.Failed() {
		t.Fatalf("report should fail")
	}
}

func TestSameVerbs(t *testing.T) {
	if !sameVerbs("key %d score %d %s", "clave %d puntuación %d %s") {
		t.Fatalf("matching verbs reported as different")
	}
	if sameVerbs("%d%%", "%d") {
		t.Fatalf("escaped percent should count")
	}
}

func TestRepositoryLocalesAreConsistent(t *testing.T) {
	root := filepath.Join("..", "..")
	rep, err := lint(root, filepath.Join(root, localesDir), primaryLocale)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if rep.Failed() {
		t.Fatalf("locale problems: %+v", rep)
	}
}
