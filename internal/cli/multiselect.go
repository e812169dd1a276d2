package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/dotdm/cdm/internal/usecase"
)

// dependencyItem represents a selectable dependency in the multi-select
type dependencyItem struct {
	dep      usecase.DependencyStatus
	selected bool
}

// multiSelectModel is the bubbletea model for multi-select
type multiSelectModel struct {
	items     []dependencyItem
	cursor    int
	title     string
	done      bool
	cancelled bool
}

func initialMultiSelectModel(deps []usecase.DependencyStatus, title string) multiSelectModel {
	items := make([]dependencyItem, len(deps))
	for i, dep := range deps {
		items[i] = dependencyItem{dep: dep}
	}
	return multiSelectModel{items: items, title: title}
}

// Init is the initial command for bubbletea
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.items[m.cursor].selected = !m.items[m.cursor].selected
	case "a":
		// Toggle all: select everything unless everything is already selected
		all := lo.EveryBy(m.items, func(it dependencyItem) bool { return it.selected })
		for i := range m.items {
			m.items[i].selected = !all
		}
	case "enter":
		if len(m.selected()) > 0 {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the UI
func (m multiSelectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, item := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		checkbox := color.New(color.FgWhite).Sprint("○")
		if item.selected {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		}

		name := color.New(color.FgWhite).Sprint(item.dep.Package)
		spec := color.New(color.FgYellow).Sprintf("(%s @ %s)", item.dep.Spec, item.dep.TargetID)
		status := ""
		if !item.dep.Resolved() {
			status = color.New(color.FgRed).Sprint(" unresolved")
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s%s\n", cursor, checkbox, name, spec, status))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all  Enter: confirm  q: quit\n"))

	return b.String()
}

// selected returns the chosen package names in list order
func (m multiSelectModel) selected() []string {
	chosen := lo.Filter(m.items, func(it dependencyItem, _ int) bool { return it.selected })
	return lo.Uniq(lo.Map(chosen, func(it dependencyItem, _ int) string { return it.dep.Package }))
}

// SelectDependencies shows a multi-select interface and returns the chosen packages
func SelectDependencies(deps []usecase.DependencyStatus, title string) ([]string, error) {
	if len(deps) == 0 {
		return nil, fmt.Errorf("no dependencies to select")
	}

	p := tea.NewProgram(initialMultiSelectModel(deps, title))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := finalModel.(multiSelectModel)
	if m.cancelled || !m.done {
		return nil, fmt.Errorf("selection cancelled")
	}
	return m.selected(), nil
}
