package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
	"github.com/raith/agroconnect/internal/shipments"
)

func (a *App) handleSupplyChainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	switch msg.String() {
	case "b":
		a.register.RequestTransition(nav.PageBookShipment, "", false)
	case "t":
		a.register.RequestTransition(nav.PageTrackShipment, "", false)
	case "y":
		a.register.RequestTransition(nav.PageShipmentHistory, "", false)
	}
	return a, nil
}

func (a *App) viewSupplyChain() string {
	all := a.book.All()
	counts := map[shipments.Status]int{}
	for _, s := range all {
		counts[s.Status]++
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Supply chain"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"pending     %d\nin transit  %d\ndelivered   %d\ncancelled   %d",
		counts[shipments.StatusPending], counts[shipments.StatusInTransit],
		counts[shipments.StatusDelivered], counts[shipments.StatusCancelled],
	)))
	b.WriteString("\n\n")

	limit := len(all)
	if limit > 5 {
		limit = 5
	}
	for _, s := range all[:limit] {
		b.WriteString(fmt.Sprintf("%s  %s  %s → %s  %s\n",
			s.TrackingNumber, s.Product, s.From, s.To, statusBadge(string(s.Status))))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("b book shipment · t track · y history · h home"))
	return b.String()
}
