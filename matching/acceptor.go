package matching

import (
	"fmt"
	"log"

	"github.com/golang/protobuf/proto"
)

// addressed pairs an outbound message with its destination, before
// encoding.
type addressed struct {
	to string
	m  *msg
}

// acceptor decides each proposal with a single rank comparison. The
// decision depends only on who the current partner is, so proposals
// may arrive in any interleaving, including repeats from proposers
// rejected or dumped earlier. Once engaged an acceptor never returns
// to free, which is what makes the first engagement the right event
// for termination counting.
type acceptor struct {
	id       int32
	rank     []int32 // rank[p] is proposer p's position in the preference list
	partner  int32   // current proposer, or -1
	notified bool    // coordinator told of first engagement
	status   int
}

func newAcceptor(id int32, prefs []int32) *acceptor {
	return &acceptor{id: id, rank: ranks(prefs), partner: -1}
}

// deliver applies one inbound message and returns the messages owed in
// response, in send order.
func (a *acceptor) deliver(m *msg) ([]addressed, error) {
	switch m.GetCmd() {
	case msg_PROPOSAL:
		p := m.GetFrom()
		if p < 0 || int(p) >= len(a.rank) {
			return nil, fmt.Errorf("%w: acceptor %d: proposal from unknown proposer %d",
				ErrProtocol, a.id, p)
		}

		if a.partner < 0 {
			a.partner = p
			a.status = stEngaged
			out := []addressed{
				{proposerAddr(p), &msg{Cmd: accept, From: proto.Int32(a.id)}},
			}
			if !a.notified {
				a.notified = true
				out = append(out, addressed{coordAddr, &msg{Cmd: engaged, From: proto.Int32(a.id)}})
			}
			return out, nil
		}

		if a.rank[p] < a.rank[a.partner] {
			// Trading up: dump the current partner first, then accept.
			// No second coordinator report; the flag is already set.
			old := a.partner
			a.partner = p
			return []addressed{
				{proposerAddr(old), &msg{Cmd: breakup, From: proto.Int32(a.id)}},
				{proposerAddr(p), &msg{Cmd: accept, From: proto.Int32(a.id)}},
			}, nil
		}
		return []addressed{
			{proposerAddr(p), &msg{Cmd: reject, From: proto.Int32(a.id)}},
		}, nil
	case msg_TERMINATE:
		a.status = stDone
		return nil, nil
	}
	return nil, fmt.Errorf("%w: acceptor %d: cannot interpret %v",
		ErrProtocol, a.id, m.GetCmd())
}

// Acceptor runs one accepting process.
type Acceptor struct {
	Id    int32
	Prefs []int32
	In    <-chan Packet
	Out   chan<- Packet
	Stop  <-chan bool
}

// Run drives the process until TERMINATE or shutdown and returns the
// final partner, -1 if none.
func (ar *Acceptor) Run() (int32, error) {
	a := newAcceptor(ar.Id, ar.Prefs)
	for {
		select {
		case pkt := <-ar.In:
			var in msg
			if err := proto.Unmarshal(pkt.Data, &in); err != nil {
				return -1, fmt.Errorf("%w: acceptor %d: %v", ErrTransport, ar.Id, err)
			}
			out, err := a.deliver(&in)
			if err != nil {
				return -1, err
			}
			for _, o := range out {
				if !send(ar.Out, ar.Stop, o.to, o.m) {
					return a.partner, nil
				}
			}
			if a.status == stDone {
				log.Printf("a%d terminated, partner p%d", a.id, a.partner)
				return a.partner, nil
			}
		case <-ar.Stop:
			return a.partner, nil
		}
	}
}
