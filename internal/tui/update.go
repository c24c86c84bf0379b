package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.sess.Snapshot().Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case sessionRestoredMsg:
		snap := a.sess.Snapshot()
		a.register.Reconcile(navView(snap))
		if snap.User != nil {
			a.register.RequestTransition(nav.PageHome, "", false)
			a.setStatus("welcome back, " + snap.User.FullName)
			return a, tea.Batch(a.loadProducts(), a.loadCart(), a.loadOrders())
		}
		// The catalog is public; have it ready before sign-in completes.
		return a, a.loadProducts()

	case signedInMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		// The session store just updated; skip the access check so this
		// navigation cannot race its propagation.
		a.register.RequestTransition(nav.PageHome, "", true)
		if msg.registered {
			a.setStatus("account created, welcome to AgroConnect")
		} else if snap := a.sess.Snapshot(); snap.User != nil {
			a.setStatus("signed in as " + snap.User.Email)
		}
		return a, tea.Batch(a.loadProducts(), a.loadCart(), a.loadOrders())

	case resetSentMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		a.forgot.sent = true
		return a, nil

	case productsMsg:
		if msg.err != nil {
			a.setError(fmt.Errorf("load products: %w", msg.err))
			return a, nil
		}
		a.market.setProducts(msg.products)
		return a, nil

	case cartMsg:
		if msg.err != nil {
			a.setError(fmt.Errorf("load cart: %w", msg.err))
			return a, nil
		}
		a.cart.set(msg.cart)
		return a, nil

	case ordersMsg:
		if msg.err != nil {
			a.setError(fmt.Errorf("load orders: %w", msg.err))
			return a, nil
		}
		a.orders.set(msg.orders)
		return a, nil

	case orderPlacedMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		a.setStatus(fmt.Sprintf("order #%d placed (%s%.2f)", msg.order.ID, a.cfg.UI.CurrencySymbol, msg.order.TotalAmount))
		a.register.RequestTransition(nav.PageOrders, "", false)
		return a, tea.Batch(a.loadCart(), a.loadOrders())

	case statusMsg:
		a.setStatus(string(msg))
		return a, nil

	case errMsg:
		a.setError(msg.error)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	snap := a.sess.Snapshot()
	if snap.Loading {
		return a, nil
	}

	st := a.register.Current()
	if snap.User == nil {
		// Mirror the dispatcher's gate: whatever the register says, a
		// signed-out session only ever interacts with the auth screens.
		switch st.Page {
		case nav.PageRegister:
			return a.handleSignupKey(msg)
		case nav.PageForgotPassword:
			return a.handleForgotKey(msg)
		default:
			return a.handleLoginKey(msg)
		}
	}

	switch st.Page {
	case nav.PageLogin, nav.PageRegister, nav.PageForgotPassword:
		// Signed in on an auth page; any key moves forward.
		a.register.RequestTransition(nav.PageHome, "", false)
		return a, nil
	case nav.PageMarketplace:
		return a.handleMarketKey(msg)
	case nav.PageCart:
		return a.handleCartKey(msg)
	case nav.PageOrders:
		return a.handleOrdersKey(msg)
	case nav.PageSupplyChain:
		return a.handleSupplyChainKey(msg)
	case nav.PageBookShipment:
		return a.handleBookingKey(msg)
	case nav.PageTrackShipment:
		return a.handleTrackKey(msg)
	case nav.PageShipmentDetails:
		return a.handleDetailsKey(msg)
	case nav.PageShipmentHistory:
		return a.handleHistoryKey(msg)
	default:
		return a.handleHomeKey(msg)
	}
}

// handleGlobalKey covers navigation shared by every signed-in screen that is
// not capturing text input.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, tea.Quit
	case "h":
		a.register.RequestTransition(nav.PageHome, "", false)
	case "m":
		a.register.RequestTransition(nav.PageMarketplace, "", false)
	case "c":
		a.register.RequestTransition(nav.PageCart, "", false)
	case "o":
		a.register.RequestTransition(nav.PageOrders, "", false)
	case "s":
		a.register.RequestTransition(nav.PageSupplyChain, "", false)
	case "x":
		a.signOut()
	default:
		return false, nil
	}
	return true, nil
}

func (a *App) signOut() {
	a.sess.SignOut()
	a.register.Reconcile(navView(a.sess.Snapshot()))
	a.setStatus("signed out")
}
