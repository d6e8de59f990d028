// Package tui provides the interactive page-view model behind "paginate
// view": it renders one container's current page, drives navigation through
// the pagination engine, and wires live text filtering to Refresh.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stokpanel/paginate/internal/paginator"
	"github.com/stokpanel/paginate/internal/search"
)

// maxItemDisplayLen keeps item lines on one row in narrow terminals.
const maxItemDisplayLen = 120

// keyMap declares the page-view key bindings.
type keyMap struct {
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	NextView  key.Binding
	Filter    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		FirstPage: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next container")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// PageViewModel is the bubbletea model for browsing paginated containers.
type PageViewModel struct {
	ctrl   *paginator.Controller
	states []*paginator.State
	active int

	filter    textinput.Model
	filtering bool
	matches   int

	keys  keyMap
	width int
}

// NewPageViewModel builds the model over an already-initialized controller.
func NewPageViewModel(ctrl *paginator.Controller) *PageViewModel {
	filter := textinput.New()
	filter.Placeholder = "type to filter items"
	filter.Prompt = "/ "
	filter.CharLimit = 128

	return &PageViewModel{
		ctrl:   ctrl,
		states: ctrl.States(),
		filter: filter,
		keys:   defaultKeyMap(),
		width:  80,
	}
}

// Init implements tea.Model.
func (m *PageViewModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *PageViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *PageViewModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.matches = search.FilterAll(m.ctrl, "")
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.matches = search.FilterAll(m.ctrl, m.filter.Value())
		return m, cmd
	}
}

func (m *PageViewModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.state()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.NextView):
		if len(m.states) > 1 {
			m.active = (m.active + 1) % len(m.states)
		}
		return m, nil
	case state == nil:
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		state.Goto(float64(state.CurrentPage() - 1))
	case key.Matches(msg, m.keys.NextPage):
		state.Goto(float64(state.CurrentPage() + 1))
	case key.Matches(msg, m.keys.FirstPage):
		state.Goto(1)
	case key.Matches(msg, m.keys.LastPage):
		state.Goto(float64(state.Meta().TotalPages))
	}
	return m, nil
}

func (m *PageViewModel) state() *paginator.State {
	if len(m.states) == 0 {
		return nil
	}
	return m.states[m.active]
}

// View implements tea.Model.
func (m *PageViewModel) View() string {
	state := m.state()
	if state == nil {
		return InfoStyle.Render("No pagination containers found.") + "\n"
	}

	meta := state.Meta()
	var b strings.Builder

	title := fmt.Sprintf("%s  (%d/%d containers)", meta.Container, m.active+1, len(m.states))
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(InfoStyle.Render(m.infoLine(meta)))
	b.WriteString("\n\n")

	for _, item := range state.PageItems() {
		b.WriteString(ItemStyle.Render(truncate(item.Text(), m.itemWidth())))
		b.WriteString("\n")
	}
	for _, item := range state.FilteredItems() {
		line := truncate(item.Text(), m.itemWidth()) + "  (filtered)"
		b.WriteString(FilteredItemStyle.Render(line))
		b.WriteString("\n")
	}

	if bar := m.pageBar(state); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filter.View())
	} else {
		b.WriteString(HelpStyle.Render("←/→ page · g/G first/last · tab container · / filter · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// infoLine mirrors the generated controls' info label, annotated with the
// active filter when one is set.
func (m *PageViewModel) infoLine(meta paginator.Meta) string {
	line := fmt.Sprintf("page %d of %d · %d records", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	if meta.TotalItems == 0 {
		line = "no records"
	}
	if query := m.filter.Value(); query != "" {
		line += fmt.Sprintf(" · filter %q (%d matched)", query, m.matches)
	}
	return line
}

// pageBar renders the generated page-button list as a styled strip. It reads
// the controls subtree the engine maintains, so the TUI always agrees with
// the markup output.
func (m *PageViewModel) pageBar(state *paginator.State) string {
	controls := state.Controls()
	if controls == nil || controls.StyleProperty("display") == "none" {
		return ""
	}
	nav := controls.Query("nav")
	if nav == nil || nav.StyleProperty("display") == "none" {
		return ""
	}
	list := controls.Query("ul.pagination")
	if list == nil {
		return ""
	}

	parts := make([]string, 0, len(list.Children()))
	for _, item := range list.Children() {
		label := item.Text()
		switch {
		case item.HasClass("active"):
			parts = append(parts, ActivePageStyle.Render(label))
		case item.HasClass("disabled"), item.HasClass("ellipsis"):
			parts = append(parts, DisabledPageStyle.Render(label))
		default:
			parts = append(parts, PageStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *PageViewModel) itemWidth() int {
	width := m.width - 4
	if width < 10 {
		width = 10
	}
	if width > maxItemDisplayLen {
		width = maxItemDisplayLen
	}
	return width
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
