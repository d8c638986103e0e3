// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cesarkit/cesar/internal/bruteforce"
	"github.com/cesarkit/cesar/internal/core"
	"github.com/cesarkit/cesar/internal/files"
	"github.com/cesarkit/cesar/internal/i18n"
	"github.com/cesarkit/cesar/internal/logging"
)

// operationKind matches the first three menu entries.
type operationKind int

const (
	opEncrypt operationKind = iota
	opDecrypt
	opCrack
)

type operationStep int

const (
	stepForm operationStep = iota
	stepConfirm
	stepRunning
	stepResult
)

// topCandidates is how many ranked candidates the crack result lists.
const topCandidates = 5

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

// operationDoneMsg carries the outcome of a finished operation.
type operationDoneMsg struct {
	result *bruteforce.Result
	lines  []string
	err    error
}

// collectReporter keeps the messages reported by the service.
type collectReporter struct{ lines []string }

func (r *collectReporter) Reportf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// operationModel is the form, confirmation and result flow of one
// encrypt, decrypt or crack run.
type operationModel struct {
	kind       operationKind
	opts       Options
	step       operationStep
	focusIndex int
	inputs     []textinput.Model // input file, key (not for crack), output file
	err        error
	result     *bruteforce.Result
	lines      []string
	copied     bool
}

func newOperationModel(kind operationKind, opts Options) *operationModel {
	m := &operationModel{kind: kind, opts: opts}

	n := 3
	if kind == opCrack {
		n = 2
	}
	m.inputs = make([]textinput.Model, n)
	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 255
		t.Width = 40
		m.inputs[i] = t
	}

	m.inputs[0].Prompt = fmt.Sprintf("%-22s", i18n.T("form.input_file")+":")
	m.inputs[0].Placeholder = "mensaje.txt"
	if m.hasKey() {
		m.inputs[1].Prompt = fmt.Sprintf("%-22s", i18n.T("form.key")+":")
		m.inputs[1].Placeholder = fmt.Sprintf("0-%d", opts.Service.Alphabet().Len()-1)
		m.inputs[1].CharLimit = 4
		m.inputs[1].SetValue(strconv.Itoa(opts.Config.Cipher.DefaultKey))
	}
	out := m.outputIndex()
	m.inputs[out].Prompt = fmt.Sprintf("%-22s", i18n.T("form.output_file")+":")
	m.inputs[out].Placeholder = "salida.txt"

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *operationModel) hasKey() bool { return m.kind != opCrack }

func (m *operationModel) outputIndex() int { return len(m.inputs) - 1 }

func (m *operationModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *operationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(operationDoneMsg); ok {
		m.result = done.result
		m.lines = done.lines
		m.err = done.err
		if done.err != nil {
			m.step = stepForm
		} else {
			m.step = stepResult
		}
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	switch m.step {
	case stepConfirm:
		if !isKey {
			return m, nil
		}
		switch strings.ToLower(keyMsg.String()) {
		case "s", "y", "enter":
			return m, m.run(true)
		case "n", "esc":
			m.step = stepForm
			m.err = fmt.Errorf("%w: %s", files.ErrNotCreated, m.value(m.outputIndex()))
		}
		return m, nil

	case stepRunning:
		return m, nil

	case stepResult:
		if !isKey {
			return m, nil
		}
		switch keyMsg.String() {
		case "c":
			if m.result != nil {
				m.copied = copyToClipboard(m.result.Plaintext) == nil
			}
		case "enter", "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		}
		return m, nil
	}

	// stepForm
	if isKey {
		switch s := keyMsg.String(); s {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.submit()
			}
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}
			return m, m.applyFocus()
		}
	}

	return m, m.updateInputs(msg)
}

func (m *operationModel) applyFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].TextStyle = blurredStyle
	}
	return tea.Batch(cmds...)
}

func (m *operationModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *operationModel) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

func (m *operationModel) key() (int, error) {
	if !m.hasKey() {
		return 0, nil
	}
	key, err := strconv.Atoi(m.value(1))
	if err != nil {
		return 0, fmt.Errorf("%s", i18n.T("form.invalid_key"))
	}
	if err := m.opts.Service.CheckKey(key); err != nil {
		return 0, fmt.Errorf("%s: %w", i18n.T("form.key_range", m.opts.Service.Alphabet().Len()-1), err)
	}
	return key, nil
}

// submit validates the form. A missing output file moves to the
// confirmation step instead of running.
func (m *operationModel) submit() tea.Cmd {
	m.err = nil
	in, out := m.value(0), m.value(m.outputIndex())
	for _, name := range []string{in, out} {
		if !files.ValidFileName(name) {
			m.err = fmt.Errorf("%w: %q", files.ErrInvalidFileName, name)
			return nil
		}
	}
	if !files.FileExists(in) {
		m.err = fmt.Errorf("%s", i18n.T("form.input_missing", in))
		return nil
	}
	if _, err := m.key(); err != nil {
		m.err = err
		return nil
	}
	if !files.FileExists(out) {
		m.step = stepConfirm
		return nil
	}
	return m.run(false)
}

// run performs the operation in a tea.Cmd. createOutput allows the store to
// create the missing output file the user agreed to.
func (m *operationModel) run(createOutput bool) tea.Cmd {
	m.step = stepRunning
	in, out := m.value(0), m.value(m.outputIndex())
	key, _ := m.key()
	kind := m.kind
	trace := m.tracer()
	rep := &collectReporter{}
	svc := m.opts.Service.With(
		core.WithStore(files.NewManager(files.AutoConfirm(createOutput))),
		core.WithReporter(rep),
	)
	return func() tea.Msg {
		var res *bruteforce.Result
		var err error
		switch kind {
		case opEncrypt:
			err = svc.EncryptFile(in, out, key)
		case opDecrypt:
			err = svc.DecryptFile(in, out, key)
		default:
			var r bruteforce.Result
			r, err = svc.CrackFile(in, out, trace)
			res = &r
		}
		return operationDoneMsg{result: res, lines: rep.lines, err: err}
	}
}

// tracer returns the observer that records every key tried by a crack run.
func (m *operationModel) tracer() bruteforce.Observer {
	if m.opts.Trace != nil {
		return bruteforce.NewTextTracer(m.opts.Trace)
	}
	return bruteforce.NewLogTracer(logging.L)
}

func (m *operationModel) title() string {
	switch m.kind {
	case opEncrypt:
		return "📝 " + i18n.T("menu.encrypt")
	case opDecrypt:
		return "🔓 " + i18n.T("menu.decrypt")
	default:
		return "🔨 " + i18n.T("menu.crack")
	}
}

func (m *operationModel) View() string {
	viewItems := []string{titleStyle.Render(m.title()), ""}

	switch m.step {
	case stepConfirm:
		question := i18n.T("files.confirm_create", m.value(m.outputIndex())) + " " + i18n.T("files.confirm_hint")
		viewItems = append(viewItems, dialogBoxStyle.Render(question))

	case stepRunning:
		viewItems = append(viewItems, specialStyle.Render(i18n.T("form.running")))

	case stepResult:
		viewItems = append(viewItems, m.resultView()...)

	default:
		for i := range m.inputs {
			viewItems = append(viewItems, m.inputs[i].View())
		}
		label := "[ " + i18n.T("form.submit") + " ]"
		button := formItemStyle.Render(label)
		if m.focusIndex == len(m.inputs) {
			button = formSelectedItemStyle.Render(label)
		}
		viewItems = append(viewItems, "", button)
		if m.err != nil {
			viewItems = append(viewItems, "", errorStyle.Render(i18n.T("error.prefix", m.err)))
		}
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("form.help")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}

func (m *operationModel) resultView() []string {
	var items []string
	for _, l := range m.lines {
		items = append(items, successStyle.Render("✔ "+l))
	}
	if m.result == nil {
		return append(items, "", helpStyle.Render(i18n.T("result.help")))
	}

	res := m.result
	items = append(items,
		"",
		statusMessageStyle.Render(i18n.T("result.best", res.Key, res.Score)),
		"",
		paneStyle.Render(truncate(res.Plaintext, 400)),
		"",
		lipgloss.NewStyle().Bold(true).Render(i18n.T("result.top")),
	)
	for _, c := range res.Top(topCandidates) {
		items = append(items, fmt.Sprintf("  %2d  %4d  %s", c.Key, c.Score, helpStyle.Render(truncate(oneLine(c.Plaintext), 48))))
	}
	if m.copied {
		items = append(items, "", successStyle.Render(i18n.T("result.copied")))
	}
	return append(items, "", helpStyle.Render(i18n.T("result.help_copy")))
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
