// Copyright (c) 2026 Cesar Team
// Cesar - Caesar cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive menu for cesar.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to the sub-views.
package tui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cesarkit/cesar/internal/config"
	"github.com/cesarkit/cesar/internal/core"
	"github.com/cesarkit/cesar/internal/i18n"
	"github.com/cesarkit/cesar/internal/logging"
)

// Options carries what the TUI needs from the caller.
type Options struct {
	Service *core.Service
	Config  config.Config
	// SaveConfig persists the configuration after a language change. Nil
	// keeps the change for this session only.
	SaveConfig func(config.Config) error
	// Trace receives the per-key brute-force trace. Nil sends it to the
	// package logger as structured records.
	Trace io.Writer
}

// viewState represents which part of the UI is currently active.
type viewState int

const (
	menuView viewState = iota
	operationView
	languageView
)

// menu entries, in display order
const (
	menuEncrypt = iota
	menuDecrypt
	menuCrack
	menuLanguage
	menuExit
)

// languageChangedMsg signals that the UI should be rebuilt with new translations.
type languageChangedMsg struct{}

// backToMenuMsg returns to the main menu from any sub-view.
type backToMenuMsg struct{}

// mainModel is the top-level model. It acts as a state machine and router,
// delegating updates and rendering to the active sub-model.
type mainModel struct {
	state    viewState
	menu     menuModel
	form     *operationModel
	language languageModel
	opts     Options
	width    int
	height   int
	err      error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string
	cursor  int
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // lang code to display name
	orderedKeys []string
	cursor      int
}

func initialModel(opts Options) mainModel {
	if opts.Service == nil {
		opts.Service = core.NewService()
	}
	return mainModel{
		state: menuView,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.encrypt"),
				i18n.T("menu.decrypt"),
				i18n.T("menu.crack"),
				i18n.T("menu.language"),
				i18n.T("menu.exit"),
			},
		},
		opts: opts,
	}
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update handles global keys and window sizes, then delegates to the active view.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case backToMenuMsg:
		m.state = menuView
		m.form = nil
		return m, nil
	case languageChangedMsg:
		// Rebuild so every label picks up the new language.
		newModel := initialModel(m.opts)
		newModel.width = m.width
		newModel.height = m.height
		newModel.err = m.err
		return newModel, nil
	}

	switch m.state {
	case operationView:
		var updated tea.Model
		updated, cmd = m.form.Update(msg)
		m.form = updated.(*operationModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, nil
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				if len(m.language.orderedKeys) == 0 {
					return m, nil
				}
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				m.opts.Config.Language = langCode
				m.err = nil
				if m.opts.SaveConfig != nil {
					if err := m.opts.SaveConfig(m.opts.Config); err != nil {
						m.err = fmt.Errorf("%s: %w", i18n.T("language.save_failed"), err)
					}
				}
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				return m.selectMenu(m.menu.cursor)
			case "1", "2", "3", "4":
				return m.selectMenu(int(keyMsg.String()[0] - '1'))
			case "0":
				return m, tea.Quit
			case "L":
				return m.selectMenu(menuLanguage)
			}
		}
	}

	return m, cmd
}

func (m mainModel) selectMenu(choice int) (tea.Model, tea.Cmd) {
	switch choice {
	case menuEncrypt, menuDecrypt, menuCrack:
		m.state = operationView
		m.err = nil
		m.form = newOperationModel(operationKind(choice), m.opts)
		return m, m.form.Init()
	case menuLanguage:
		m.state = languageView
		m.language = newLanguageModel()
		return m, nil
	case menuExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m mainModel) View() string {
	switch m.state {
	case operationView:
		return docStyle.Render(m.form.View())
	case languageView:
		return docStyle.Render(m.language.View())
	default:
		return m.menu.View(m.err, m.width)
	}
}

func (m menuModel) View(err error, width int) string {
	title := mainTitleStyle.Render("🔐 " + i18n.T("menu.title"))
	subTitle := helpStyle.Render(i18n.T("menu.subtitle"))
	header := lipgloss.JoinVertical(lipgloss.Left, title, subTitle)

	var items []string
	for i, choice := range m.choices {
		num := i + 1
		if i == menuExit {
			num = 0
		}
		label := fmt.Sprintf("%d. %s", num, choice)
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+label))
		} else {
			items = append(items, itemStyle.Render("  "+label))
		}
	}
	pane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))

	parts := []string{header, "", pane}
	if err != nil {
		parts = append(parts, "", errorStyle.Render(i18n.T("error.prefix", err)))
	}
	parts = append(parts, "", renderFooter(i18n.T("menu.help"), i18n.GetLang(), width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func newLanguageModel() languageModel {
	choices := i18n.GetAvailableLocales()

	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cursor := 0
	for i, k := range keys {
		if k == i18n.GetLang() {
			cursor = i
		}
	}
	return languageModel{choices: choices, orderedKeys: keys, cursor: cursor}
}

func (m languageModel) View() string {
	title := titleStyle.Render("🌐 " + i18n.T("language.title"))

	var items []string
	for i, code := range m.orderedKeys {
		label := fmt.Sprintf("%s (%s)", m.choices[code], code)
		if m.cursor == i {
			items = append(items, selectedItemStyle.Render("▸ "+label))
		} else {
			items = append(items, itemStyle.Render("  "+label))
		}
	}
	listPane := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	helpLine := renderFooter(i18n.T("language.help"), "", 60)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", listPane, "", helpLine)
}

// heldOutput buffers log and trace lines written from tea commands.
type heldOutput struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (h *heldOutput) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Write(p)
}

func (h *heldOutput) flush(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = h.buf.WriteTo(w)
}

// Run is the main entrypoint for the TUI. It runs the Bubble Tea program
// until the user exits. Log lines and brute-force traces are held back
// while the screen is in use and flushed to stderr afterwards.
func Run(opts Options) error {
	held := &heldOutput{}
	logging.SetOutput(held)
	defer func() {
		logging.SetOutput(os.Stderr)
		held.flush(os.Stderr)
	}()
	if opts.Trace == nil {
		opts.Trace = held
	}

	if _, err := tea.NewProgram(initialModel(opts), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return err
	}
	return nil
}
