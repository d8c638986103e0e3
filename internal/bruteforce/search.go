// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package bruteforce recovers the key of a shift cipher by trying every key
// and ranking the decryptions with a dictionary-based score.
package bruteforce

import (
	"sort"

	"github.com/cesarkit/cesar/internal/cipher"
	"github.com/cesarkit/cesar/internal/dictionary"
)

// Candidate is the decryption produced by one trial key.
type Candidate struct {
	Key       int
	Plaintext string
	Score     int
}

// Result is the outcome of a full search. Candidates holds one entry per
// key, in key order.
type Result struct {
	Key        int
	Plaintext  string
	Score      int
	Candidates []Candidate
}

// Best returns the winning candidate.
func (r Result) Best() Candidate {
	return Candidate{Key: r.Key, Plaintext: r.Plaintext, Score: r.Score}
}

// Top returns up to n candidates ordered by descending score; equal scores
// keep key order. n <= 0 returns every candidate.
func (r Result) Top(n int) []Candidate {
	out := make([]Candidate, len(r.Candidates))
	copy(out, r.Candidates)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Searcher runs exhaustive key searches. It holds no mutable state and may
// be reused.
type Searcher struct {
	alphabet  *cipher.Alphabet
	scorer    *Scorer
	observers []Observer
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithAlphabet sets the alphabet whose keys are searched.
func WithAlphabet(a *cipher.Alphabet) Option {
	return func(s *Searcher) { s.alphabet = a }
}

// WithDictionary scores candidates against d.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(s *Searcher) { s.scorer = NewScorer(d) }
}

// WithObserver registers o to receive every candidate and the final result.
func WithObserver(o Observer) Option {
	return func(s *Searcher) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// New returns a Searcher over the default alphabet and dictionary unless
// overridden by opts.
func New(opts ...Option) *Searcher {
	s := &Searcher{}
	for _, opt := range opts {
		opt(s)
	}
	if s.alphabet == nil {
		s.alphabet = cipher.Default()
	}
	if s.scorer == nil {
		s.scorer = defaultScorer
	}
	return s
}

// Run decrypts ciphertext with every key in [0, N), scores each candidate
// and returns the best one. Ties go to the lowest key. Observers passed
// here are notified after those registered with WithObserver.
func (s *Searcher) Run(ciphertext string, extra ...Observer) Result {
	observers := append(append([]Observer(nil), s.observers...), extra...)

	n := s.alphabet.Len()
	res := Result{Score: -1, Candidates: make([]Candidate, 0, n)}
	for key := 0; key < n; key++ {
		plain := s.alphabet.Decrypt(ciphertext, key)
		c := Candidate{Key: key, Plaintext: plain, Score: s.scorer.Score(plain)}
		res.Candidates = append(res.Candidates, c)
		for _, o := range observers {
			if o != nil {
				o.OnCandidate(c)
			}
		}
		if c.Score > res.Score {
			res.Key, res.Plaintext, res.Score = c.Key, c.Plaintext, c.Score
		}
	}
	if n == 0 {
		// nothing to try; the identity is the only answer
		res.Key, res.Plaintext, res.Score = 0, ciphertext, 0
	}

	best := res.Best()
	for _, o := range observers {
		if o != nil {
			o.OnBest(best)
		}
	}
	return res
}

// BruteForce searches ciphertext with the default alphabet and dictionary
// and returns the best plaintext.
func BruteForce(ciphertext string, observers ...Observer) Result {
	return New().Run(ciphertext, observers...)
}
