package matching

import (
	"fmt"
	"log"

	"github.com/golang/protobuf/proto"
)

// Packet is one encoded message in flight, addressed to a named
// process.
type Packet struct {
	Addr string
	Data []byte
}

type Stats struct {
	// Messages delivered, by command.
	TotalRecv [nmsg]int64
}

// exchange delivers packets between named processes. Delivery is
// reliable and preserves send order per (sender, receiver) pair; in
// fact packets enter mailboxes in global post order, but nothing
// beyond the pairwise guarantee may be relied on.
type exchange struct {
	post  chan Packet
	boxes map[string]chan Packet
	stop  <-chan bool
	errs  chan<- error
	done  chan bool
	stats Stats
}

func newExchange(cap int, stop <-chan bool, errs chan<- error) *exchange {
	return &exchange{
		post:  make(chan Packet, cap),
		boxes: make(map[string]chan Packet),
		stop:  stop,
		errs:  errs,
		done:  make(chan bool),
	}
}

// register creates the mailbox for addr. All processes register before
// run starts; the map is read-only afterward.
func (x *exchange) register(addr string, cap int) <-chan Packet {
	ch := make(chan Packet, cap)
	x.boxes[addr] = ch
	return ch
}

// run moves packets from the post queue into mailboxes until stopped,
// tracing each delivery. An undecodable or unroutable packet kills the
// run; the protocol has no way to retry safely. Mailboxes are sized
// for the protocol's worst case, so delivery itself never wedges.
func (x *exchange) run() {
	defer close(x.done)
	for {
		select {
		case p := <-x.post:
			var m msg
			if err := proto.Unmarshal(p.Data, &m); err != nil {
				x.fail(fmt.Errorf("%w: to %s: %v", ErrTransport, p.Addr, err))
				return
			}
			x.stats.TotalRecv[m.GetCmd()]++
			log.Printf("%s -> %s %v", fromAddr(&m), p.Addr, m.GetCmd())

			box, ok := x.boxes[p.Addr]
			if !ok {
				x.fail(fmt.Errorf("%w: no process %q", ErrTransport, p.Addr))
				return
			}
			select {
			case box <- p:
			case <-x.stop:
				return
			}
		case <-x.stop:
			return
		}
	}
}

func (x *exchange) fail(err error) {
	select {
	case x.errs <- err:
	case <-x.stop:
	}
}

// send encodes m and posts it to addr, giving up if the run has been
// stopped. Reports whether the packet was posted.
func send(out chan<- Packet, stop <-chan bool, addr string, m *msg) bool {
	b, _ := proto.Marshal(m)
	select {
	case out <- Packet{addr, b}:
		return true
	case <-stop:
		return false
	}
}
