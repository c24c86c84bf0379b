package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/api"
)

type ordersState struct {
	orders []api.Order
	cursor int
}

func (o *ordersState) set(orders []api.Order) {
	o.orders = orders
	if o.cursor >= len(orders) {
		o.cursor = len(orders) - 1
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
}

func (a *App) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	os := &a.orders
	switch msg.String() {
	case "up", "k":
		if os.cursor > 0 {
			os.cursor--
		}
	case "down", "j":
		if os.cursor < len(os.orders)-1 {
			os.cursor++
		}
	case "r":
		return a, a.loadOrders()
	}
	return a, nil
}

func (a *App) viewOrders() string {
	os := &a.orders
	var b strings.Builder
	b.WriteString(titleStyle.Render("Orders"))
	b.WriteString("\n\n")

	if len(os.orders) == 0 {
		b.WriteString(dimStyle.Render("no orders yet"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("m marketplace · h home"))
		return b.String()
	}
	for i, o := range os.orders {
		line := fmt.Sprintf("order #%d  %s  %s%.2f  %s",
			o.ID, o.Status, a.cfg.UI.CurrencySymbol, o.TotalAmount, o.CreatedAt)
		if i == os.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
			b.WriteString("\n")
			for _, item := range o.Items {
				b.WriteString(fmt.Sprintf("    %s x%d  %s%.2f\n",
					item.ProductName, item.Quantity, a.cfg.UI.CurrencySymbol, item.TotalCost))
			}
		} else {
			b.WriteString("  " + line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down select · r reload · h home"))
	return b.String()
}
