package nav

import "testing"

type sessionStub struct {
	s Session
}

func (st *sessionStub) session() Session { return st.s }

func TestRequestTransitionWhileSignedOutLandsOnLogin(t *testing.T) {
	stub := &sessionStub{}
	r := NewRegister(stub.session)

	r.RequestTransition(PageMarketplace, "", false)

	got := r.Current()
	if got.Page != PageLogin || got.AuxID != "" {
		t.Fatalf("expected {login, \"\"}, got {%s, %q}", got.Page, got.AuxID)
	}
}

func TestBypassNavigatesBeforeSessionPropagates(t *testing.T) {
	// Sign-up flow: the session just updated, the register's view may lag.
	stub := &sessionStub{}
	r := NewRegister(stub.session)

	r.RequestTransition(PageHome, "", true)

	got := r.Current()
	if got.Page != PageHome || got.AuxID != "" {
		t.Fatalf("expected {home, \"\"}, got {%s, %q}", got.Page, got.AuxID)
	}
}

func TestAuxiliaryIDFollowsTransitions(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)

	r.RequestTransition(PageShipmentHistory, "", false)
	r.RequestTransition(PageShipmentDetails, "SHP-42", false)

	got := r.Current()
	if got.Page != PageShipmentDetails || got.AuxID != "SHP-42" {
		t.Fatalf("expected {shipment-details, SHP-42}, got {%s, %q}", got.Page, got.AuxID)
	}

	// A transition that omits the auxiliary id clears it.
	r.RequestTransition(PageShipmentHistory, "", false)
	if got := r.Current(); got.AuxID != "" {
		t.Fatalf("auxiliary id should be cleared, got %q", got.AuxID)
	}
}

func TestEverySubscriberNotifiedExactlyOnce(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)

	counts := make([]int, 5)
	for i := range counts {
		i := i
		r.Subscribe(func(State) { counts[i]++ })
	}

	r.RequestTransition(PageHome, "", false)

	for i, n := range counts {
		if n != 1 {
			t.Fatalf("subscriber %d notified %d times, want 1", i, n)
		}
	}
}

func TestSubscriberSeesCommittedState(t *testing.T) {
	stub := &sessionStub{}
	r := NewRegister(stub.session)

	var seen State
	r.Subscribe(func(s State) { seen = s })

	r.RequestTransition(PageOrders, "x", false)

	// Signed out, so the committed state is the downgraded one.
	if seen.Page != PageLogin || seen.AuxID != "" {
		t.Fatalf("subscriber saw {%s, %q}, want committed {login, \"\"}", seen.Page, seen.AuxID)
	}
}

func TestSelfUnsubscribeDoesNotSkipOthers(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)

	first, second, third := 0, 0, 0
	r.Subscribe(func(State) { first++ })
	var cancel func()
	cancel = r.Subscribe(func(State) {
		second++
		cancel()
	})
	r.Subscribe(func(State) { third++ })

	r.RequestTransition(PageHome, "", false)
	if first != 1 || second != 1 || third != 1 {
		t.Fatalf("first pass counts %d/%d/%d, want 1/1/1", first, second, third)
	}

	r.RequestTransition(PageMarketplace, "", false)
	if second != 1 {
		t.Fatalf("unsubscribed callback fired again: %d", second)
	}
	if first != 2 || third != 2 {
		t.Fatalf("remaining subscribers missed the second pass: %d/%d", first, third)
	}
}

func TestSubscribeDuringPassDefersToNextTransition(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)

	late := 0
	r.Subscribe(func(State) {
		if late == 0 {
			r.Subscribe(func(State) { late++ })
		}
	})

	r.RequestTransition(PageHome, "", false)
	if late != 0 {
		t.Fatalf("late subscriber fired in the pass that added it")
	}
	r.RequestTransition(PageCart, "", false)
	if late != 1 {
		t.Fatalf("late subscriber notified %d times on next pass, want 1", late)
	}
}

func TestReconcileForcesLogoutRedirect(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)
	r.RequestTransition(PageMarketplace, "", false)

	stub.s = Session{Authenticated: false}
	r.Reconcile(stub.s)

	got := r.Current()
	if got.Page != PageLogin || got.AuxID != "" {
		t.Fatalf("expected {login, \"\"} after sign-out, got {%s, %q}", got.Page, got.AuxID)
	}
}

func TestReconcileLeavesStateWhileLoading(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)
	r.RequestTransition(PageCart, "", false)

	stub.s = Session{Loading: true}
	r.Reconcile(stub.s)

	if got := r.Current(); got.Page != PageCart {
		t.Fatalf("loading reconcile must not move off %s, got %s", PageCart, got.Page)
	}
}

func TestReconcileLeavesAuthPagesAlone(t *testing.T) {
	stub := &sessionStub{}
	r := NewRegister(stub.session)

	fired := 0
	r.Subscribe(func(State) { fired++ })

	r.Reconcile(Session{})
	if fired != 0 {
		t.Fatalf("reconcile on login page must not notify, fired %d", fired)
	}

	r.RequestTransition(PageRegister, "", false)
	fired = 0
	r.Reconcile(Session{})
	if fired != 0 {
		t.Fatalf("reconcile on register page must not notify, fired %d", fired)
	}
}

func TestSignOutOnCartNotifiesOnce(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)
	r.RequestTransition(PageCart, "", false)

	fired := 0
	r.Subscribe(func(State) { fired++ })

	stub.s = Session{}
	r.Reconcile(stub.s)

	got := r.Current()
	if got.Page != PageLogin || got.AuxID != "" {
		t.Fatalf("expected {login, \"\"}, got {%s, %q}", got.Page, got.AuxID)
	}
	if fired != 1 {
		t.Fatalf("subscribers fired %d times, want exactly 1", fired)
	}
}

func TestSuccessiveTransitionsApplyInCallOrder(t *testing.T) {
	stub := &sessionStub{s: Session{Authenticated: true}}
	r := NewRegister(stub.session)

	var pages []Page
	r.Subscribe(func(s State) { pages = append(pages, s.Page) })

	r.RequestTransition(PageHome, "", false)
	r.RequestTransition(PageOrders, "", false)

	if len(pages) != 2 || pages[0] != PageHome || pages[1] != PageOrders {
		t.Fatalf("unexpected notification order: %v", pages)
	}
	if got := r.Current(); got.Page != PageOrders {
		t.Fatalf("final state %s, want orders", got.Page)
	}
}
