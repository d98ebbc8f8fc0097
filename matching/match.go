package matching

import (
	"fmt"
)

// Match wires one full run: n proposers, n acceptors, a coordinator,
// and the exchange between them. Each process is a goroutine owning
// only its own state; every cross-process effect is a message.
type Match struct {
	pprefs, aprefs Prefs

	// Stats is populated after Run returns.
	Stats Stats
}

// New validates the two preference tables and returns a Match ready to
// run. A bad table is rejected here, before any message exists.
func New(pprefs, aprefs Prefs) (*Match, error) {
	if len(pprefs) == 0 {
		return nil, fmt.Errorf("%w: empty population", ErrBadSize)
	}
	if len(pprefs) != len(aprefs) {
		return nil, fmt.Errorf("%w: %d proposers, %d acceptors",
			ErrBadSize, len(pprefs), len(aprefs))
	}
	if err := pprefs.validate(); err != nil {
		return nil, fmt.Errorf("proposers: %w", err)
	}
	if err := aprefs.validate(); err != nil {
		return nil, fmt.Errorf("acceptors: %w", err)
	}
	return &Match{pprefs: pprefs, aprefs: aprefs}, nil
}

type result struct {
	role    byte // 'p', 'a' or 'c'
	id      int32
	partner int32
	err     error
}

// Run executes the protocol to completion and returns the final
// matching: pairs[p] is the acceptor matched to proposer p. The first
// process error aborts the whole run and is returned; both sides'
// partner records must mirror each other or the run fails rather than
// report a partial matching.
func (m *Match) Run() ([]int32, error) {
	n := len(m.pprefs)
	stop := make(chan bool)
	errs := make(chan error, 1)
	x := newExchange(2*n+2, stop, errs)

	// Mailboxes are bounded by the protocol itself: an acceptor hears
	// at most one proposal per proposer, a proposer at most one reply
	// per proposal plus one breakup per engagement, the coordinator at
	// most one report per acceptor, plus TERMINATE each.
	cin := x.register(coordAddr, n+1)
	pin := make([]<-chan Packet, n)
	ain := make([]<-chan Packet, n)
	for i := 0; i < n; i++ {
		pin[i] = x.register(proposerAddr(int32(i)), 2*n+2)
		ain[i] = x.register(acceptorAddr(int32(i)), n+2)
	}
	go x.run()

	results := make(chan result, 2*n+1)
	go func() {
		co := &Coordinator{N: int32(n), In: cin, Out: x.post, Stop: stop}
		results <- result{role: 'c', err: co.Run()}
	}()
	for i := 0; i < n; i++ {
		i := int32(i)
		go func() {
			pr := &Proposer{Id: i, Prefs: m.pprefs[i], In: pin[i], Out: x.post, Stop: stop}
			partner, err := pr.Run()
			results <- result{role: 'p', id: i, partner: partner, err: err}
		}()
		go func() {
			ar := &Acceptor{Id: i, Prefs: m.aprefs[i], In: ain[i], Out: x.post, Stop: stop}
			partner, err := ar.Run()
			results <- result{role: 'a', id: i, partner: partner, err: err}
		}()
	}

	pairs := make([]int32, n)
	back := make([]int32, n)
	for i := range pairs {
		pairs[i], back[i] = -1, -1
	}

	var firstErr error
	stopped := false
	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
		if !stopped {
			stopped = true
			close(stop)
		}
	}
	for got := 0; got < 2*n+1; {
		select {
		case r := <-results:
			got++
			switch {
			case r.err != nil:
				fail(r.err)
			case r.role == 'p':
				pairs[r.id] = r.partner
			case r.role == 'a':
				back[r.id] = r.partner
			}
		case err := <-errs:
			fail(err)
		}
	}
	if !stopped {
		close(stop)
	}
	<-x.done
	m.Stats = x.stats
	if firstErr != nil {
		return nil, firstErr
	}

	for p, a := range pairs {
		if a < 0 || back[a] != int32(p) {
			return nil, fmt.Errorf("%w: partner records disagree for proposer %d",
				ErrProtocol, p)
		}
	}
	return pairs, nil
}
