// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cesarkit/cesar/internal/bruteforce"
	"github.com/cesarkit/cesar/internal/cipher"
	"github.com/cesarkit/cesar/internal/dictionary"
	"github.com/cesarkit/cesar/internal/files"
	"github.com/cesarkit/cesar/internal/i18n"
	"github.com/cesarkit/cesar/internal/logging"
)

// DefaultPropertiesPath is where EncryptFile records its parameters.
const DefaultPropertiesPath = "files/properties.txt"

// ErrEmptyInput is returned when there is nothing to encrypt.
var ErrEmptyInput = errors.New("input is empty")

// Service bundles the alphabet, dictionary and file access used by the
// cesar operations.
type Service struct {
	alphabet       *cipher.Alphabet
	dict           *dictionary.Dictionary
	store          FileStore
	reporter       Reporter
	propertiesPath string
}

// Option configures a Service.
type Option func(*Service)

// WithAlphabet replaces the default alphabet.
func WithAlphabet(a *cipher.Alphabet) Option {
	return func(s *Service) {
		if a != nil {
			s.alphabet = a
		}
	}
}

// WithDictionary replaces the default dictionary.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(s *Service) {
		if d != nil {
			s.dict = d
		}
	}
}

// WithStore sets the file store used by the *File operations.
func WithStore(fs FileStore) Option {
	return func(s *Service) {
		if fs != nil {
			s.store = fs
		}
	}
}

// WithReporter sets where progress messages go.
func WithReporter(r Reporter) Option {
	return func(s *Service) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithPropertiesPath changes the properties file location. An empty path
// disables the properties record.
func WithPropertiesPath(path string) Option {
	return func(s *Service) { s.propertiesPath = path }
}

// NewService returns a Service using the default alphabet and dictionary and
// a file manager that never creates missing files unless configured to.
func NewService(opts ...Option) *Service {
	s := &Service{
		alphabet:       cipher.Default(),
		dict:           dictionary.Default(),
		store:          files.NewManager(nil),
		reporter:       nopReporter{},
		propertiesPath: DefaultPropertiesPath,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// With returns a copy of s with opts applied.
func (s *Service) With(opts ...Option) *Service {
	out := *s
	for _, o := range opts {
		o(&out)
	}
	return &out
}

// Alphabet returns the alphabet the service shifts over.
func (s *Service) Alphabet() *cipher.Alphabet { return s.alphabet }

// Dictionary returns the dictionary used for scoring.
func (s *Service) Dictionary() *dictionary.Dictionary { return s.dict }

// Store returns the file store used by the *File operations.
func (s *Service) Store() FileStore { return s.store }

// CheckKey validates key against the service alphabet.
func (s *Service) CheckKey(key int) error {
	return files.CheckKey(key, s.alphabet.Len())
}

// EncryptText shifts text forward by key. Blank text yields ErrEmptyInput.
func (s *Service) EncryptText(text string, key int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	if err := s.CheckKey(key); err != nil {
		return "", err
	}
	return s.alphabet.Encrypt(text, key), nil
}

// DecryptText shifts text backward by key.
func (s *Service) DecryptText(text string, key int) (string, error) {
	if err := s.CheckKey(key); err != nil {
		return "", err
	}
	return s.alphabet.Decrypt(text, key), nil
}

// CrackText runs the brute-force search over ciphertext.
func (s *Service) CrackText(ciphertext string, obs ...bruteforce.Observer) bruteforce.Result {
	return s.searcher().Run(ciphertext, obs...)
}

// Score returns the dictionary breakdown of text.
func (s *Service) Score(text string) bruteforce.Breakdown {
	return bruteforce.NewScorer(s.dict).Analyze(text)
}

func (s *Service) searcher() *bruteforce.Searcher {
	return bruteforce.New(bruteforce.WithAlphabet(s.alphabet), bruteforce.WithDictionary(s.dict))
}

// EncryptFile encrypts the content of in into out and records the
// parameters in the properties file. Failing to write the properties file
// is logged but does not fail the operation.
func (s *Service) EncryptFile(in, out string, key int) error {
	if err := s.CheckKey(key); err != nil {
		return err
	}
	content, err := s.store.Read(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	encrypted, err := s.EncryptText(content, key)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := s.store.Write(out, encrypted); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	s.reporter.Reportf("%s", i18n.T("core.encrypted", out))

	if s.propertiesPath == "" {
		return nil
	}
	props := files.Properties{Input: in, Output: out, Key: key}
	if err := files.WriteProperties(s.propertiesPath, props); err != nil {
		logging.Errorf("%s: %v", i18n.T("core.properties_failed"), err)
		return nil
	}
	s.reporter.Reportf("%s", i18n.T("core.properties_written", s.propertiesPath))
	return nil
}

// DecryptFile decrypts the content of in with key into out.
func (s *Service) DecryptFile(in, out string, key int) error {
	if err := s.CheckKey(key); err != nil {
		return err
	}
	content, err := s.store.Read(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := s.store.Write(out, s.alphabet.Decrypt(content, key)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	s.reporter.Reportf("%s", i18n.T("core.decrypted", out))
	return nil
}

// CrackFile recovers the key of the ciphertext in in and writes the best
// plaintext to out.
func (s *Service) CrackFile(in, out string, obs ...bruteforce.Observer) (bruteforce.Result, error) {
	content, err := s.store.Read(in)
	if err != nil {
		return bruteforce.Result{}, fmt.Errorf("read input: %w", err)
	}
	res := s.CrackText(content, obs...)
	if err := s.store.Write(out, res.Plaintext); err != nil {
		return res, fmt.Errorf("write output: %w", err)
	}
	s.reporter.Reportf("%s", i18n.T("core.cracked", out, res.Key, res.Score))
	return res, nil
}
