// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package bruteforce

import (
	"fmt"
	"io"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Observer receives the search trace: one OnCandidate call per key in key
// order, then a single OnBest call with the winner.
type Observer interface {
	OnCandidate(Candidate)
	OnBest(Candidate)
}

// Recorder keeps the trace in memory.
type Recorder struct {
	Candidates []Candidate
	Best       *Candidate
}

func (r *Recorder) OnCandidate(c Candidate) { r.Candidates = append(r.Candidates, c) }

func (r *Recorder) OnBest(c Candidate) {
	best := c
	r.Best = &best
}

// TextTracer writes the human readable trace:
//
//	Key: 5, Decrypted: el perro y la gata, Score: 37
//	Best key found: 5 with score: 37
//
// Write errors are remembered and reported by Err.
type TextTracer struct {
	w   io.Writer
	err error
}

// NewTextTracer returns a tracer writing to w.
func NewTextTracer(w io.Writer) *TextTracer {
	return &TextTracer{w: w}
}

func (t *TextTracer) OnCandidate(c Candidate) {
	t.printf("Key: %d, Decrypted: %s, Score: %d\n", c.Key, c.Plaintext, c.Score)
}

func (t *TextTracer) OnBest(c Candidate) {
	t.printf("Best key found: %d with score: %d\n", c.Key, c.Score)
}

// Err returns the first write error, if any.
func (t *TextTracer) Err() error {
	return t.err
}

func (t *TextTracer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// LogTracer emits the trace as structured log records. Every record of one
// search carries the same run id.
type LogTracer struct {
	log *clog.Logger
	run string
}

// NewLogTracer returns a tracer logging through lg with a fresh run id.
func NewLogTracer(lg *clog.Logger) *LogTracer {
	return &LogTracer{log: lg, run: uuid.NewString()}
}

// RunID returns the id attached to every record.
func (t *LogTracer) RunID() string {
	return t.run
}

func (t *LogTracer) OnCandidate(c Candidate) {
	t.log.Debug("candidate", "run", t.run, "key", c.Key, "score", c.Score, "plaintext", c.Plaintext)
}

func (t *LogTracer) OnBest(c Candidate) {
	t.log.Info("best", "run", t.run, "key", c.Key, "score", c.Score)
}
