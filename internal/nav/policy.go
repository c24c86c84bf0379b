package nav

// Session is the register's read-only view of authentication state. Loading
// is true only while the session store is still restoring a persisted
// session, before the first authoritative answer is known.
type Session struct {
	Authenticated bool
	Loading       bool
}

// protectedPages require an authenticated session. Login, register and
// forgot-password stay reachable regardless of session state; product-detail
// is deliberately outside the set and relies on the dispatcher's gate.
var protectedPages = map[Page]bool{
	PageHome:            true,
	PageMarketplace:     true,
	PageCart:            true,
	PageOrders:          true,
	PageSupplyChain:     true,
	PageBookShipment:    true,
	PageTrackShipment:   true,
	PageShipmentDetails: true,
	PageShipmentHistory: true,
}

// Protected reports whether p requires an authenticated session.
func Protected(p Page) bool {
	return protectedPages[p]
}

// Decide maps a requested transition to the effective one. It is pure and
// total: every input yields some valid state, worst case the login page.
//
// skipAccessCheck exists for the sign-up flow, which must navigate forward in
// the same tick its session update propagates; it is a narrow bypass, not a
// general escape hatch. While the session is still loading no redirect
// decision is made, since "no user yet" is not "no user".
func Decide(page Page, auxID string, session Session, skipAccessCheck bool) (Page, string) {
	if skipAccessCheck {
		return page, auxID
	}
	if session.Loading {
		return page, auxID
	}
	if protectedPages[page] && !session.Authenticated {
		return PageLogin, ""
	}
	return page, auxID
}
