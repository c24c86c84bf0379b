package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/api"
	"github.com/raith/agroconnect/internal/catalog"
)

type marketState struct {
	products  []api.Product
	visible   []api.Product
	cursor    int
	search    textinput.Model
	searching bool
	category  string
}

func newMarketState() marketState {
	search := textinput.New()
	search.Placeholder = "search products"
	search.CharLimit = 80
	return marketState{search: search}
}

func (m *marketState) setProducts(products []api.Product) {
	m.products = products
	m.refresh()
}

// refresh re-derives the visible slice from the full catalog, the category
// filter and the search query.
func (m *marketState) refresh() {
	m.visible = catalog.Search(catalog.FilterByCategory(m.products, m.category), m.search.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *marketState) cycleCategory() {
	cats := catalog.Categories()
	if m.category == "" {
		m.category = cats[0]
	} else {
		next := ""
		for i, c := range cats {
			if c == m.category && i+1 < len(cats) {
				next = cats[i+1]
			}
		}
		m.category = next
	}
	m.refresh()
}

func (a *App) handleMarketKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.market
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refresh()
		return a, cmd
	}

	if handled, cmd := a.handleGlobalKey(msg); handled {
		return a, cmd
	}
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
	case "f":
		m.cycleCategory()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "a", "enter":
		if m.cursor < len(m.visible) {
			return a, a.addToCartCmd(m.visible[m.cursor])
		}
	case "r":
		return a, a.loadProducts()
	}
	return a, nil
}

func (a *App) viewMarketplace() string {
	m := &a.market
	var b strings.Builder
	b.WriteString(titleStyle.Render("Marketplace"))
	b.WriteString("\n\n")

	category := m.category
	if category == "" {
		category = "all"
	}
	b.WriteString(m.search.View())
	b.WriteString(dimStyle.Render("   category: " + category))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("no products match"))
	}
	for i, p := range m.visible {
		line := fmt.Sprintf("%s %s  %s%.2f/%s  stock %d  %s · %s",
			p.Image, p.Name, a.cfg.UI.CurrencySymbol, p.Price, p.Unit, p.Stock, p.Seller, p.Location)
		if i == m.cursor && !m.searching {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("/ search · f category · a add to cart · r reload · h home"))
	return b.String()
}
