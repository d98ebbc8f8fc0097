package matching

import (
	"fmt"
	"log"

	"github.com/golang/protobuf/proto"
)

// proposer is the state machine for one proposing process. It works
// down its preference list while free. The cursor only ever advances,
// so no acceptor is contacted twice and total proposals are bounded
// by n.
type proposer struct {
	id      int32
	prefs   []int32 // acceptor ids, best first
	next    int     // cursor: next candidate in prefs
	partner int32   // current acceptor, or -1
	status  int
}

func newProposer(id int32, prefs []int32) *proposer {
	return &proposer{id: id, prefs: prefs, partner: -1}
}

// step returns the proposal the proposer owes, if any, and the
// acceptor it goes to. With equal populations deferred acceptance
// matches every proposer, so exhausting the list while still free
// means the preference data or the protocol is broken.
func (p *proposer) step() (to int32, m *msg, err error) {
	if p.status != stFree {
		return 0, nil, nil
	}
	if p.next >= len(p.prefs) {
		return 0, nil, fmt.Errorf("%w: proposer %d exhausted its preference list",
			ErrProtocol, p.id)
	}
	to = p.prefs[p.next]
	p.status = stWaiting
	return to, &msg{Cmd: proposal, From: proto.Int32(p.id)}, nil
}

// deliver applies one inbound message.
func (p *proposer) deliver(m *msg) error {
	from := m.GetFrom()
	switch m.GetCmd() {
	case msg_ACCEPT:
		if p.status != stWaiting || from != p.prefs[p.next] {
			return fmt.Errorf("%w: proposer %d: unexpected ACCEPT from acceptor %d",
				ErrProtocol, p.id, from)
		}
		p.partner = from
		p.next++
		p.status = stEngaged
	case msg_REJECT:
		if p.status != stWaiting || from != p.prefs[p.next] {
			return fmt.Errorf("%w: proposer %d: unexpected REJECT from acceptor %d",
				ErrProtocol, p.id, from)
		}
		p.next++
		p.status = stFree
	case msg_BREAKUP:
		// Only the current partner can dump us. Anything else is a
		// stale breakup that raced ahead of our view of that acceptor;
		// absorb it without touching a pending proposal.
		if p.status == stEngaged && from == p.partner {
			p.partner = -1
			p.status = stFree
		}
	case msg_TERMINATE:
		p.status = stDone
	default:
		return fmt.Errorf("%w: proposer %d: cannot interpret %v",
			ErrProtocol, p.id, m.GetCmd())
	}
	return nil
}

// Proposer runs one proposing process. It reads a single mailbox and
// dispatches on message type, so a breakup can never be lost while a
// proposal response is pending.
type Proposer struct {
	Id    int32
	Prefs []int32
	In    <-chan Packet
	Out   chan<- Packet
	Stop  <-chan bool
}

// Run drives the process until TERMINATE or shutdown and returns the
// final partner, -1 if none.
func (pr *Proposer) Run() (int32, error) {
	p := newProposer(pr.Id, pr.Prefs)
	for {
		to, m, err := p.step()
		if err != nil {
			return -1, err
		}
		if m != nil && !send(pr.Out, pr.Stop, acceptorAddr(to), m) {
			return p.partner, nil
		}

		select {
		case pkt := <-pr.In:
			var in msg
			if err := proto.Unmarshal(pkt.Data, &in); err != nil {
				return -1, fmt.Errorf("%w: proposer %d: %v", ErrTransport, pr.Id, err)
			}
			if err := p.deliver(&in); err != nil {
				return -1, err
			}
			if p.status == stDone {
				log.Printf("p%d terminated, partner a%d", p.id, p.partner)
				return p.partner, nil
			}
		case <-pr.Stop:
			return p.partner, nil
		}
	}
}
