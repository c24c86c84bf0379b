package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
	"github.com/raith/agroconnect/internal/shipments"
)

type trackState struct {
	input    textinput.Model
	result   *shipments.Shipment
	notFound bool
}

func newTrackState() trackState {
	input := textinput.New()
	input.Placeholder = "tracking number (e.g. SCM2024001)"
	input.CharLimit = 40
	input.Focus()
	return trackState{input: input}
}

func (t *trackState) reset() {
	t.input.SetValue("")
	t.input.Focus()
	t.result = nil
	t.notFound = false
}

func (a *App) handleTrackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &a.track
	switch msg.String() {
	case "esc":
		a.register.RequestTransition(nav.PageSupplyChain, "", false)
		return a, nil
	case "enter":
		query := strings.TrimSpace(t.input.Value())
		if query == "" {
			return a, nil
		}
		if s, ok := a.book.ByTracking(query); ok {
			t.result = &s
			t.notFound = false
		} else {
			t.result = nil
			t.notFound = true
		}
		return a, nil
	case "ctrl+d":
		if t.result != nil {
			a.register.RequestTransition(nav.PageShipmentDetails, t.result.ID, false)
		}
		return a, nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return a, cmd
}

func (a *App) viewTrackShipment() string {
	t := &a.track
	var b strings.Builder
	b.WriteString(titleStyle.Render("Track shipment"))
	b.WriteString("\n\n")
	b.WriteString(t.input.View())
	b.WriteString("\n\n")

	switch {
	case t.notFound:
		b.WriteString(errorStyle.Render("no shipment with that tracking number"))
		b.WriteString("\n\n")
	case t.result != nil:
		s := t.result
		b.WriteString(boxStyle.Render(strings.Join([]string{
			s.TrackingNumber + "  " + statusBadge(string(s.Status)),
			s.Product,
			s.From + " → " + s.To,
			"booked " + s.Date + ", carrier " + s.ProviderName,
		}, "\n")))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("ctrl+d full details · "))
	}
	b.WriteString(dimStyle.Render("enter search · esc back"))
	return b.String()
}
