package nav

import "sync"

// Register owns the client's single navigation state. All reads go through
// Current, all writes through RequestTransition or Reconcile; subscribers are
// notified synchronously after every committed change.
//
// Mutations are serialized by the mutex so the commit and the fan-out appear
// atomic to every subscriber: a callback never observes a half-applied state.
type Register struct {
	mu      sync.Mutex
	state   State
	session func() Session
	subs    map[int]func(State)
	nextSub int
}

// NewRegister builds a register starting on the login page. session supplies
// the current authentication view whenever a transition is decided.
func NewRegister(session func() Session) *Register {
	return &Register{
		state:   State{Page: PageLogin},
		session: session,
		subs:    make(map[int]func(State)),
	}
}

// Current returns a snapshot of the navigation state. It does not update in
// place; re-read after each notification.
func (r *Register) Current() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Subscribe registers fn to run after every subsequent committed transition.
// It does not invoke fn immediately; read Current for the mount-time state.
// The returned cancel is safe to call at any time, including from inside fn,
// and never skips or double-fires other subscribers of an in-flight pass.
func (r *Register) Subscribe(fn func(State)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// RequestTransition applies the access policy to the requested target,
// commits the effective state as a full replace and notifies every subscriber
// registered at the start of the call exactly once. It never fails.
func (r *Register) RequestTransition(page Page, auxID string, skipAccessCheck bool) {
	r.mu.Lock()
	effPage, effAux := Decide(page, auxID, r.session(), skipAccessCheck)
	r.state = State{Page: effPage, AuxID: effAux}
	snapshot := r.state
	fns := make([]func(State), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	// Fan-out runs outside the lock so callbacks may subscribe, unsubscribe
	// or request another transition. Subscribers added here are first
	// notified on the next transition.
	for _, fn := range fns {
		fn(snapshot)
	}
}

// Reconcile reacts to a session change. A session that resolves to
// unauthenticated while anything other than login or register is mounted
// forces a transition to login with the auxiliary id cleared, through the
// same commit-and-notify path as any other transition. While the session is
// still loading the state is left untouched.
func (r *Register) Reconcile(session Session) {
	if session.Loading || session.Authenticated {
		return
	}
	r.mu.Lock()
	page := r.state.Page
	r.mu.Unlock()
	if page == PageLogin || page == PageRegister {
		return
	}
	r.RequestTransition(PageLogin, "", false)
}
