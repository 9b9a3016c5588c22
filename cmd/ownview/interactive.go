package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aberaud/ownkit/cow"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	ownerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	payloadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEditText
)

type interactiveModel struct {
	owners   []*cow.Shared[*note]
	input    textinput.Model
	events   []string
	drops    int
	selected int
	nextID   int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	m := &interactiveModel{}
	s := cow.NewShared(&note{text: "hello", drops: &m.drops})
	m.owners = append(m.owners, s)
	m.nextID = 2
	m.logf("created owner 0 with a fresh payload")
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) logf(format string, args ...any) {
	m.events = append(m.events, fmt.Sprintf(format, args...))
	if len(m.events) > 5 {
		m.events = m.events[len(m.events)-5:]
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateEditText {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateEditText {
		switch key.String() {
		case "enter":
			owner := m.owners[m.selected]
			before := fmt.Sprintf("%p", owner.Get())
			owner.Mut().text = m.input.Value()
			after := fmt.Sprintf("%p", owner.Get())
			if before != after {
				m.logf("owner %d detached onto a private clone (%s -> %s)", m.selected, before, after)
			} else {
				m.logf("owner %d mutated in place (sole owner)", m.selected)
			}
			m.state = stateBrowse
		case "esc":
			m.state = stateBrowse
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		for _, o := range m.owners {
			o.Drop()
		}
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.owners)-1 {
			m.selected++
		}

	case "n":
		s := cow.NewShared(&note{text: fmt.Sprintf("note-%d", m.nextID), drops: &m.drops})
		m.nextID++
		m.owners = append(m.owners, s)
		m.logf("created owner %d with a fresh payload", len(m.owners)-1)

	case "s":
		if len(m.owners) > 0 {
			src := m.owners[m.selected]
			m.owners = append(m.owners, src.Share())
			m.logf("owner %d shares owner %d's payload, count now %d",
				len(m.owners)-1, m.selected, src.NumRef())
		}

	case "a":
		if len(m.owners) > 0 {
			src := m.owners[m.selected]
			var s cow.Shared[*note]
			s.Attach(src.Get())
			m.owners = append(m.owners, &s)
			m.logf("owner %d attached to owner %d's payload (count %d, aliased)",
				len(m.owners)-1, m.selected, src.NumRef())
		}

	case "m":
		if len(m.owners) > 0 {
			m.input = textinput.New()
			m.input.Prompt = "text: "
			m.input.Placeholder = m.owners[m.selected].Get().text
			m.input.Width = 40
			m.input.Focus()
			m.state = stateEditText
		}

	case "d":
		if len(m.owners) > 0 {
			before := m.drops
			m.owners[m.selected].Drop()
			m.owners = append(m.owners[:m.selected], m.owners[m.selected+1:]...)
			if m.drops > before {
				m.logf("dropped owner %d; last owner, payload destroyed", m.selected)
			} else {
				m.logf("dropped owner %d; other owners keep the payload", m.selected)
			}
			if m.selected >= len(m.owners) && m.selected > 0 {
				m.selected--
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ownview"))
	b.WriteString(" copy-on-write owner groups\n\n")

	if len(m.owners) == 0 {
		b.WriteString("no owners, press n to create one\n")
	}
	for i, o := range m.owners {
		row := fmt.Sprintf("%s  payload %s  %s  %s",
			ownerStyle.Render(fmt.Sprintf("owner %d", i)),
			payloadStyle.Render(fmt.Sprintf("%p", o.Get())),
			countStyle.Render(fmt.Sprintf("count %d", o.NumRef())),
			o.Get().text,
		)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("payload destructions: %d\n", m.drops))

	if len(m.events) > 0 {
		b.WriteString("\n")
		for _, e := range m.events {
			b.WriteString(eventStyle.Render("• " + e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.state == stateEditText {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter mutate (clones if shared) • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • n new • s share • a attach • m mutate • d drop • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
