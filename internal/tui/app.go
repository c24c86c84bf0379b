// Package tui is the terminal front end. Its View is the render dispatcher:
// on every cycle it re-derives the screen to mount from the session snapshot
// and the navigation state, so a stale protected page can never render for a
// signed-out session even if the register were somehow left behind.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/api"
	"github.com/raith/agroconnect/internal/config"
	"github.com/raith/agroconnect/internal/nav"
	"github.com/raith/agroconnect/internal/session"
	"github.com/raith/agroconnect/internal/shipments"
)

// App ties together screens.
type App struct {
	ctx      context.Context
	cfg      config.Config
	api      *api.Client
	sess     *session.Store
	register *nav.Register
	book     *shipments.Book

	width  int
	height int

	status    string
	statusErr bool
	spin      spinner.Model

	login   loginForm
	signup  signupForm
	forgot  forgotForm
	market  marketState
	cart    cartState
	orders  ordersState
	booking bookingForm
	track   trackState
	history historyState
}

func New(ctx context.Context, cfg config.Config, client *api.Client, sess *session.Store, register *nav.Register, book *shipments.Book) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = headerStyle

	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		api:      client,
		sess:     sess,
		register: register,
		book:     book,
		width:    100,
		height:   32,
		spin:     sp,
		login:    newLoginForm(),
		signup:   newSignupForm(),
		forgot:   newForgotForm(),
		market:   newMarketState(),
		booking:  newBookingForm(),
		track:    newTrackState(),
	}
	// Reset transient screen state whenever navigation commits, so a screen
	// never comes back mid-flow after a redirect.
	register.Subscribe(func(st nav.State) { a.navigated(st) })
	return a
}

// navView adapts the session snapshot to the register's read-only view.
func navView(s session.Snapshot) nav.Session {
	return nav.Session{Authenticated: s.User != nil, Loading: s.Loading}
}

func (a *App) navigated(st nav.State) {
	a.status = ""
	a.statusErr = false
	switch st.Page {
	case nav.PageLogin:
		a.login.reset()
	case nav.PageRegister:
		a.signup.reset()
	case nav.PageForgotPassword:
		a.forgot.reset()
	case nav.PageBookShipment:
		a.booking.reset()
	case nav.PageTrackShipment:
		a.track.reset()
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.restoreSession())
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// commands

func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		a.sess.Restore()
		return sessionRestoredMsg{}
	}
}

func (a *App) signInCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := a.sess.SignIn(a.ctx, email, password); err != nil {
			return signedInMsg{err: err}
		}
		return signedInMsg{}
	}
}

func (a *App) signUpCmd(in api.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		if err := a.sess.SignUp(a.ctx, in); err != nil {
			return signedInMsg{err: err}
		}
		// Accounts are not signed in by registration; do it in the same
		// motion so the user lands on home.
		if err := a.sess.SignIn(a.ctx, in.Email, in.Password); err != nil {
			return signedInMsg{err: err}
		}
		return signedInMsg{registered: true}
	}
}

func (a *App) resetPasswordCmd(email string) tea.Cmd {
	return func() tea.Msg {
		return resetSentMsg{err: a.sess.ResetPassword(a.ctx, email)}
	}
}

func (a *App) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := a.api.Products(a.ctx)
		return productsMsg{products: products, err: err}
	}
}

func (a *App) loadCart() tea.Cmd {
	return func() tea.Msg {
		cart, err := a.api.Cart(a.ctx)
		return cartMsg{cart: cart, err: err}
	}
}

func (a *App) loadOrders() tea.Cmd {
	return func() tea.Msg {
		orders, err := a.api.Orders(a.ctx)
		return ordersMsg{orders: orders, err: err}
	}
}

func (a *App) addToCartCmd(p api.Product) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.api.AddToCart(a.ctx, p.Name, p.Price, 1); err != nil {
				return errMsg{err}
			}
			return statusMsg(p.Name + " added to cart")
		},
		a.loadCart(),
	)
}

func (a *App) updateQuantityCmd(item api.CartItem, quantity int) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.api.UpdateCartItem(a.ctx, item.ProductName, quantity); err != nil {
				return errMsg{err}
			}
			return statusMsg("quantity updated")
		},
		a.loadCart(),
	)
}

func (a *App) removeFromCartCmd(item api.CartItem) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.api.RemoveFromCart(a.ctx, item.ProductName); err != nil {
				return errMsg{err}
			}
			return statusMsg(item.ProductName + " removed")
		},
		a.loadCart(),
	)
}

func (a *App) clearCartCmd() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.api.ClearCart(a.ctx); err != nil {
				return errMsg{err}
			}
			return statusMsg("cart cleared")
		},
		a.loadCart(),
	)
}

func (a *App) placeOrderCmd() tea.Cmd {
	return func() tea.Msg {
		order, err := a.api.CreateOrder(a.ctx)
		return orderPlacedMsg{order: order, err: err}
	}
}

// messages

type sessionRestoredMsg struct{}

type signedInMsg struct {
	err        error
	registered bool
}

type resetSentMsg struct{ err error }

type productsMsg struct {
	products []api.Product
	err      error
}

type cartMsg struct {
	cart api.Cart
	err  error
}

type ordersMsg struct {
	orders []api.Order
	err    error
}

type orderPlacedMsg struct {
	order api.Order
	err   error
}

type statusMsg string

type errMsg struct{ error }
