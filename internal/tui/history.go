package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
)

type historyState struct {
	cursor int
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	all := a.book.All()
	hs := &a.history
	switch msg.String() {
	case "esc":
		a.register.RequestTransition(nav.PageSupplyChain, "", false)
	case "up", "k":
		if hs.cursor > 0 {
			hs.cursor--
		}
	case "down", "j":
		if hs.cursor < len(all)-1 {
			hs.cursor++
		}
	case "enter":
		if hs.cursor < len(all) {
			a.register.RequestTransition(nav.PageShipmentDetails, all[hs.cursor].ID, false)
		}
	}
	return a, nil
}

func (a *App) viewShipmentHistory() string {
	all := a.book.All()
	hs := &a.history
	if hs.cursor >= len(all) {
		hs.cursor = 0
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Shipment history"))
	b.WriteString("\n\n")
	if len(all) == 0 {
		b.WriteString(dimStyle.Render("no shipments booked yet"))
	}
	for i, s := range all {
		line := fmt.Sprintf("%s  %s  %s → %s  %s  %s",
			s.TrackingNumber, s.Product, s.From, s.To, s.Date, statusBadge(string(s.Status)))
		if i == hs.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter details · esc supply chain · h home"))
	return b.String()
}
