// Package tui implements the menu-driven front end over the profile
// registry. It only browses and picks; the actual ssh process is spawned
// by the caller after the program exits, so the terminal is free.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeloras/ssh-manager/internal/profile"
	"github.com/zeloras/ssh-manager/internal/registry"
	"github.com/zeloras/ssh-manager/internal/search"
	"github.com/zeloras/ssh-manager/internal/stats"
)

type viewMode int

const (
	modeList viewMode = iota
	modeFilter
	modeStats
)

// Model is the bubbletea model for the profile menu.
type Model struct {
	reg *registry.Registry

	mode     viewMode
	filter   textinput.Model
	visible  []*profile.Profile
	selected int

	status string
	errMsg string

	width  int
	height int

	// choice is the profile picked for connecting, nil until enter.
	choice *profile.Profile
}

// New creates the menu model over a registry.
func New(reg *registry.Registry) *Model {
	filter := textinput.New()
	filter.Placeholder = "search name, host, user, tag..."
	filter.CharLimit = 64

	m := &Model{
		reg:    reg,
		filter: filter,
	}
	m.refresh()
	return m
}

// Choice returns the profile selected for connecting, if any.
func (m *Model) Choice() (*profile.Profile, bool) {
	return m.choice, m.choice != nil
}

func (m *Model) refresh() {
	query := m.filter.Value()
	if query == "" {
		m.visible = m.reg.List()
	} else {
		m.visible = search.Search(m.reg.List(), query)
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeFilter {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.filter.Blur()
		m.filter.SetValue("")
		m.refresh()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeList
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "/":
		m.mode = modeFilter
		m.errMsg = ""
		return m, m.filter.Focus()

	case "s":
		if m.mode == modeStats {
			m.mode = modeList
		} else {
			m.mode = modeStats
		}

	case "d":
		if p := m.current(); p != nil {
			m.status = "Command: " + p.BuildCommand()
			m.errMsg = ""
		}

	case "enter":
		if m.mode == modeStats {
			m.mode = modeList
			return m, nil
		}
		if p := m.current(); p != nil {
			m.choice = p
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) current() *profile.Profile {
	if len(m.visible) == 0 || m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.visible[m.selected]
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SSH Profile Manager"))
	b.WriteString("\n\n")

	if m.mode == modeStats {
		b.WriteString(m.renderStats())
		b.WriteString(helpStyle.Render("\ns/enter: back  q: quit"))
		return b.String()
	}

	if m.mode == modeFilter || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n\n")
	}

	b.WriteString(m.renderList())

	if p := m.current(); p != nil {
		b.WriteString("\n")
		b.WriteString(m.renderDetails(p))
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\nenter: connect  d: show command  /: search  s: stats  q: quit"))
	return b.String()
}

func (m *Model) renderList() string {
	if len(m.visible) == 0 {
		return itemStyle.Render("  no profiles")
	}

	var b strings.Builder
	for i, p := range m.visible {
		line := fmt.Sprintf("%s (%s)", p.Name, p.Target())
		if i == m.selected {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderDetails(p *profile.Profile) string {
	var lines []string
	lines = append(lines, "Description: "+p.Description)
	if p.PrivateKeyPath != "" {
		lines = append(lines, "Key:  "+p.PrivateKeyPath)
	}
	if p.JumpHost != "" {
		lines = append(lines, "Jump: "+p.JumpHost)
	}
	if len(p.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(p.Tags, ", "))
	}
	if p.UseCount > 0 {
		lines = append(lines, fmt.Sprintf("Used %d times, last %s", p.UseCount, p.LastUsed))
	} else {
		lines = append(lines, "Never used")
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStats() string {
	s := stats.Compute(m.reg.List())

	var b strings.Builder
	fmt.Fprintf(&b, "  Total profiles:   %d\n", s.Total)
	fmt.Fprintf(&b, "  With SSH keys:    %d\n", s.WithKeys)
	fmt.Fprintf(&b, "  With jump hosts:  %d\n", s.WithJumpHosts)
	fmt.Fprintf(&b, "  Never used:       %d\n", s.NeverUsed)
	fmt.Fprintf(&b, "  Most common port: %d\n", s.MostCommonPort)

	if len(s.MostUsed) > 0 && s.MostUsed[0].UseCount > 0 {
		b.WriteString("\n  Most used:\n")
		for i, u := range s.MostUsed {
			if u.UseCount == 0 {
				break
			}
			fmt.Fprintf(&b, "  %d. %s (%d times)\n", i+1, u.Name, u.UseCount)
		}
	}
	return b.String()
}
