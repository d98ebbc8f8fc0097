package matching

import (
	"errors"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/golang/protobuf/proto"
)

func TestExchangeDeliversInPostOrder(t *testing.T) {
	stop := make(chan bool)
	errs := make(chan error, 1)
	x := newExchange(8, stop, errs)
	box := x.register("a0", 8)
	go x.run()

	for i := 0; i < 5; i++ {
		x.post <- Packet{"a0", mustMarshal(newProposal(int32(i)))}
	}
	for i := 0; i < 5; i++ {
		p := <-box
		var m msg
		assert.Equal(t, nil, proto.Unmarshal(p.Data, &m))
		assert.Equal(t, int32(i), m.GetFrom())
	}

	close(stop)
	<-x.done
	assert.Equal(t, int64(5), x.stats.TotalRecv[msg_PROPOSAL])
}

func TestExchangeFailsOnUnknownAddress(t *testing.T) {
	stop := make(chan bool)
	defer close(stop)
	errs := make(chan error, 1)
	x := newExchange(1, stop, errs)
	go x.run()

	x.post <- Packet{"z9", mustMarshal(newProposal(0))}
	assert.T(t, errors.Is(<-errs, ErrTransport))
	<-x.done
}

func TestExchangeFailsOnUndecodablePacket(t *testing.T) {
	stop := make(chan bool)
	defer close(stop)
	errs := make(chan error, 1)
	x := newExchange(1, stop, errs)
	x.register("a0", 1)
	go x.run()

	x.post <- Packet{"a0", []byte{7}}
	assert.T(t, errors.Is(<-errs, ErrTransport))
	<-x.done
}
