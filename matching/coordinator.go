package matching

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

// coordinator detects global completion by counting first engagements.
// Every acceptor reports exactly once over a run, so n reports mean
// the matching is a bijection and no further breakups can occur.
type coordinator struct {
	seen  []bool // per-acceptor report bitmap
	count int
}

func newCoordinator(n int) *coordinator {
	return &coordinator{seen: make([]bool, n)}
}

// deliver applies one inbound message; done reports whether the
// matching is complete.
func (c *coordinator) deliver(m *msg) (done bool, err error) {
	if m.GetCmd() != msg_ENGAGED {
		return false, fmt.Errorf("%w: coordinator: cannot interpret %v",
			ErrProtocol, m.GetCmd())
	}
	i := m.GetFrom()
	if i < 0 || int(i) >= len(c.seen) {
		return false, fmt.Errorf("%w: coordinator: report from unknown acceptor %d",
			ErrProtocol, i)
	}
	if c.seen[i] {
		return false, fmt.Errorf("%w: coordinator: second engagement report from acceptor %d",
			ErrProtocol, i)
	}
	c.seen[i] = true
	c.count++
	return c.count == len(c.seen), nil
}

// Coordinator runs the termination detector for a population of size N.
type Coordinator struct {
	N    int32
	In   <-chan Packet
	Out  chan<- Packet
	Stop <-chan bool
}

// Run counts engagement reports and, once all N acceptors have
// reported, broadcasts TERMINATE to every process and stops.
func (co *Coordinator) Run() error {
	c := newCoordinator(int(co.N))
	for {
		select {
		case pkt := <-co.In:
			var in msg
			if err := proto.Unmarshal(pkt.Data, &in); err != nil {
				return fmt.Errorf("%w: coordinator: %v", ErrTransport, err)
			}
			done, err := c.deliver(&in)
			if err != nil {
				return err
			}
			if done {
				for i := int32(0); i < co.N; i++ {
					if !send(co.Out, co.Stop, proposerAddr(i), msgTerminate) {
						return nil
					}
					if !send(co.Out, co.Stop, acceptorAddr(i), msgTerminate) {
						return nil
					}
				}
				return nil
			}
		case <-co.Stop:
			return nil
		}
	}
}
