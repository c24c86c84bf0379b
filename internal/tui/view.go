package tui

import (
	"strings"

	"github.com/raith/agroconnect/internal/nav"
)

// View re-derives the mounted screen on every render. Three tiers, in order:
// a loading session shows only the spinner, a signed-out session shows the
// auth screens regardless of what the register holds, and only a signed-in
// session dispatches on the committed page. Pages without a case fall through
// to the dashboard.
func (a *App) View() string {
	snap := a.sess.Snapshot()
	if snap.Loading {
		return "\n  " + a.spin.View() + " loading session...\n"
	}

	var body string
	st := a.register.Current()
	if snap.User == nil {
		switch st.Page {
		case nav.PageRegister:
			body = a.viewSignup()
		case nav.PageForgotPassword:
			body = a.viewForgot()
		default:
			body = a.viewLogin()
		}
	} else {
		switch st.Page {
		case nav.PageMarketplace:
			body = a.viewMarketplace()
		case nav.PageCart:
			body = a.viewCart()
		case nav.PageOrders:
			body = a.viewOrders()
		case nav.PageSupplyChain:
			body = a.viewSupplyChain()
		case nav.PageBookShipment:
			body = a.viewBookShipment()
		case nav.PageTrackShipment:
			body = a.viewTrackShipment()
		case nav.PageShipmentDetails:
			body = a.viewShipmentDetails()
		case nav.PageShipmentHistory:
			body = a.viewShipmentHistory()
		default:
			body = a.viewHome(snap)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("AgroConnect"))
	if snap.User != nil {
		b.WriteString(dimStyle.Render("  " + snap.User.Email))
	}
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString("\n")
		if a.statusErr {
			b.WriteString(errorStyle.Render(a.status))
		} else {
			b.WriteString(successStyle.Render(a.status))
		}
		b.WriteString("\n")
	}
	return b.String()
}
