package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
)

func (a *App) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	switch msg.String() {
	case "esc", "backspace":
		a.register.RequestTransition(nav.PageShipmentHistory, "", false)
	}
	return a, nil
}

func (a *App) viewShipmentDetails() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shipment details"))
	b.WriteString("\n\n")

	s, ok := a.book.ByID(a.register.Current().AuxID)
	if !ok {
		b.WriteString(errorStyle.Render("shipment not found"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("esc back to history"))
		return b.String()
	}

	rows := []string{
		"tracking   " + s.TrackingNumber + "  " + statusBadge(string(s.Status)),
		"product    " + s.Product,
		"pickup     " + s.PickupAddress + ", " + s.PickupCity,
		"dropoff    " + s.DropoffAddress + ", " + s.DropoffCity,
		"quantity   " + s.Quantity,
		"weight     " + s.Weight + " kg",
		"vehicle    " + s.VehicleType,
		"scheduled  " + s.ScheduledDate + " " + s.ScheduledTime,
		"carrier    " + s.ProviderName,
		fmt.Sprintf("amount     %s%.2f", a.cfg.UI.CurrencySymbol, s.Amount),
	}
	if s.DeliveredDate != "" {
		rows = append(rows, "delivered  "+s.DeliveredDate)
	}
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("esc back to history · s supply chain · h home"))
	return b.String()
}
