package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/api"
)

type cartState struct {
	cart   api.Cart
	cursor int
}

func (c *cartState) set(cart api.Cart) {
	c.cart = cart
	if c.cursor >= len(cart.Items) {
		c.cursor = len(cart.Items) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

func (c *cartState) selected() (api.CartItem, bool) {
	if c.cursor >= len(c.cart.Items) {
		return api.CartItem{}, false
	}
	return c.cart.Items[c.cursor], true
}

func (a *App) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	cs := &a.cart
	switch msg.String() {
	case "up", "k":
		if cs.cursor > 0 {
			cs.cursor--
		}
	case "down", "j":
		if cs.cursor < len(cs.cart.Items)-1 {
			cs.cursor++
		}
	case "+":
		if item, ok := cs.selected(); ok {
			return a, a.updateQuantityCmd(item, item.Quantity+1)
		}
	case "-":
		if item, ok := cs.selected(); ok {
			if item.Quantity <= 1 {
				return a, a.removeFromCartCmd(item)
			}
			return a, a.updateQuantityCmd(item, item.Quantity-1)
		}
	case "d":
		if item, ok := cs.selected(); ok {
			return a, a.removeFromCartCmd(item)
		}
	case "C":
		if len(cs.cart.Items) > 0 {
			return a, a.clearCartCmd()
		}
	case "enter", "p":
		if len(cs.cart.Items) == 0 {
			a.setStatus("cart is empty")
			a.statusErr = true
			return a, nil
		}
		a.setStatus("placing order...")
		return a, a.placeOrderCmd()
	case "r":
		return a, a.loadCart()
	}
	return a, nil
}

func (a *App) viewCart() string {
	cs := &a.cart
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cart"))
	b.WriteString("\n\n")

	if len(cs.cart.Items) == 0 {
		b.WriteString(dimStyle.Render("your cart is empty"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("m marketplace · h home"))
		return b.String()
	}
	for i, item := range cs.cart.Items {
		line := fmt.Sprintf("%s  x%d  %s%.2f", item.ProductName, item.Quantity, a.cfg.UI.CurrencySymbol, item.TotalCost)
		if i == cs.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\n%d items, total %s%.2f\n\n",
		cs.cart.TotalItems, a.cfg.UI.CurrencySymbol, cs.cart.TotalCost))
	b.WriteString(dimStyle.Render("+/- quantity · d remove · C clear · enter place order · h home"))
	return b.String()
}
