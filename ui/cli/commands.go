// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cesarkit/cesar/internal/bruteforce"
	"github.com/cesarkit/cesar/internal/core"
	"github.com/cesarkit/cesar/internal/i18n"
	"github.com/cesarkit/cesar/internal/logging"
)

// ErrNoInput is returned when no --text, --file or piped stdin was given.
var ErrNoInput = errors.New("no input: use --text, --file or pipe text on stdin")

// ErrUnknownTrace is returned for an unsupported --trace value.
var ErrUnknownTrace = errors.New("unknown trace format")

// ioFlags are the input/output flags shared by encrypt, decrypt and crack.
type ioFlags struct {
	text   string
	file   string
	output string
}

func (f *ioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "Text to process")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read the input from this file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the result to this file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
}

// read returns the input: --text, then --file, then stdin. An interactive
// stdin counts as no input.
func (f *ioFlags) read(cmd *cobra.Command, svc *core.Service) (string, error) {
	switch {
	case cmd.Flags().Changed("text"):
		return f.text, nil
	case f.file != "":
		return svc.Store().Read(f.file)
	}
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", ErrNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoInput
	}
	return string(data), nil
}

// write sends result to --output or stdout.
func (f *ioFlags) write(cmd *cobra.Command, svc *core.Service, result string) error {
	if f.output == "" {
		return printLine(cmd.OutOrStdout(), result)
	}
	return svc.Store().Write(f.output, result)
}

func printLine(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}

func newEncryptCmd() *cobra.Command {
	var flags ioFlags
	var key int
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a known key",
		Long: `Encrypts --text, --file or stdin by shifting every alphabet symbol
forward by --key. With both --file and --output, the parameters are also
recorded in the properties file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.CheckKey(key); err != nil {
				return err
			}
			if flags.file != "" && flags.output != "" {
				return svc.EncryptFile(flags.file, flags.output, key)
			}
			text, err := flags.read(cmd, svc)
			if err != nil {
				return err
			}
			out, err := svc.EncryptText(text, key)
			if err != nil {
				return err
			}
			return flags.write(cmd, svc, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&key, "key", "k", 0, "Shift key in [0, alphabet length)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newDecryptCmd() *cobra.Command {
	var flags ioFlags
	var key int
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with a known key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.CheckKey(key); err != nil {
				return err
			}
			if flags.file != "" && flags.output != "" {
				return svc.DecryptFile(flags.file, flags.output, key)
			}
			text, err := flags.read(cmd, svc)
			if err != nil {
				return err
			}
			out, err := svc.DecryptText(text, key)
			if err != nil {
				return err
			}
			return flags.write(cmd, svc, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&key, "key", "k", 0, "Shift key used for encryption")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newCrackCmd() *cobra.Command {
	var flags ioFlags
	var trace string
	var top int
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Recover the key by trying every shift",
		Long: `Decrypts the input with every key and keeps the plaintext with the
highest dictionary score; ties go to the lowest key. The trace of every
candidate is written as text, logfmt or json records to stderr, or to
stdout when --output is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			text, err := flags.read(cmd, svc)
			if err != nil {
				return err
			}

			traceOut := cmd.ErrOrStderr()
			if flags.output != "" {
				traceOut = cmd.OutOrStdout()
			}
			obs, err := newTraceObserver(trace, traceOut)
			if err != nil {
				return err
			}

			var observers []bruteforce.Observer
			if obs != nil {
				observers = append(observers, obs)
			}
			res := svc.CrackText(text, observers...)
			if t, ok := obs.(*bruteforce.TextTracer); ok && t.Err() != nil {
				logging.Warnf("trace output failed: %v", t.Err())
			}

			if top > 0 {
				for _, c := range res.Top(top) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", i18n.T("cli.candidate", c.Key, c.Score, preview(c.Plaintext, 60)))
				}
			}

			if flags.output == "" {
				return printLine(cmd.OutOrStdout(), res.Plaintext)
			}
			if err := flags.write(cmd, svc, res.Plaintext); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", i18n.T("core.cracked", flags.output, res.Key, res.Score))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&trace, "trace", "text", `Trace format: "text", "logfmt", "json" or "none"`)
	cmd.Flags().IntVar(&top, "top", 0, "Also list the N best candidates on stderr")
	return cmd
}

// newTraceObserver returns the observer for --trace, or nil for "none".
func newTraceObserver(format string, w io.Writer) (bruteforce.Observer, error) {
	switch strings.ToLower(format) {
	case "", "none":
		return nil, nil
	case "text":
		return bruteforce.NewTextTracer(w), nil
	case "logfmt", "json":
		return bruteforce.NewLogTracer(logging.NewStructured(w, format)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTrace, format)
}

func newAlphabetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "List the symbols the cipher shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := core.NewService().Alphabet()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", i18n.T("cli.alphabet_size", a.Len()))
			for i, r := range a.Symbols() {
				fmt.Fprintf(out, "%2d %q\n", i, r)
			}
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [text]",
		Short: "Show the dictionary score of a text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				var f ioFlags
				if text, err = f.read(cmd, svc); err != nil {
					return err
				}
			}
			b := svc.Score(text)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", i18n.T("cli.score", b.Score))
			fmt.Fprintf(out, "%s\n", i18n.T("cli.valid_words", b.ValidWords, b.Tokens))
			return nil
		},
	}
}

// preview shortens s to at most n runes on a single line.
func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
