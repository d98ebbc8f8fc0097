package matching

import (
	"errors"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/golang/protobuf/proto"
)

func TestCoordinatorCountsFirstEngagements(t *testing.T) {
	c := newCoordinator(3)
	for i, exp := range []bool{false, false, true} {
		done, err := c.deliver(newEngaged(int32(i)))
		assert.Equal(t, nil, err)
		assert.Equal(t, exp, done)
	}
}

func TestCoordinatorDuplicateReportIsFatal(t *testing.T) {
	c := newCoordinator(2)
	c.deliver(newEngaged(0))

	_, err := c.deliver(newEngaged(0))
	assert.T(t, errors.Is(err, ErrProtocol))
}

func TestCoordinatorRejectsUnknownAcceptor(t *testing.T) {
	c := newCoordinator(2)
	_, err := c.deliver(newEngaged(5))
	assert.T(t, errors.Is(err, ErrProtocol))
}

func TestCoordinatorCannotInterpretProposal(t *testing.T) {
	c := newCoordinator(1)
	_, err := c.deliver(newProposal(0))
	assert.T(t, errors.Is(err, ErrProtocol))
}

func TestCoordinatorBroadcastsTerminate(t *testing.T) {
	in := make(chan Packet, 4)
	out := make(chan Packet, 8)
	stop := make(chan bool)
	defer close(stop)

	co := &Coordinator{N: 2, In: in, Out: out, Stop: stop}
	errs := make(chan error, 1)
	go func() { errs <- co.Run() }()

	in <- pack(newEngaged(1))
	in <- pack(newEngaged(0))

	got := map[string]bool{}
	for i := 0; i < 4; i++ {
		p := <-out
		var m msg
		assert.Equal(t, nil, proto.Unmarshal(p.Data, &m))
		assert.Equal(t, msg_TERMINATE, m.GetCmd())
		got[p.Addr] = true
	}
	assert.Equal(t, nil, <-errs)
	assert.Equal(t, map[string]bool{"p0": true, "p1": true, "a0": true, "a1": true}, got)
}
