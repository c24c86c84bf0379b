package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/session"
	"github.com/raith/agroconnect/internal/shipments"
)

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	if msg.String() == "r" {
		a.setStatus("refreshing...")
		return a, tea.Batch(a.loadProducts(), a.loadCart(), a.loadOrders())
	}
	return a, nil
}

func (a *App) viewHome(snap session.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")
	if snap.User != nil {
		b.WriteString(fmt.Sprintf("%s (%s)\n\n", snap.User.FullName, snap.User.Role))
	}

	pending := 0
	for _, s := range a.book.All() {
		if s.Status == shipments.StatusPending || s.Status == shipments.StatusInTransit {
			pending++
		}
	}
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"products listed   %d\ncart items        %d\norders placed     %d\nactive shipments  %d",
		len(a.market.products), a.cart.cart.TotalItems, len(a.orders.orders), pending,
	)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("m marketplace · c cart · o orders · s supply chain · r refresh · x sign out · q quit"))
	return b.String()
}
