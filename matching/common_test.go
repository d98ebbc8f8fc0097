package matching

import (
	"github.com/golang/protobuf/proto"

	_ "github.com/ha/matchd/quiet"
)

// For testing convenience
func newProposal(from int32) *msg {
	return &msg{Cmd: proposal, From: proto.Int32(from)}
}

// For testing convenience
func newAccept(from int32) *msg {
	return &msg{Cmd: accept, From: proto.Int32(from)}
}

// For testing convenience
func newReject(from int32) *msg {
	return &msg{Cmd: reject, From: proto.Int32(from)}
}

// For testing convenience
func newBreakup(from int32) *msg {
	return &msg{Cmd: breakup, From: proto.Int32(from)}
}

// For testing convenience
func newEngaged(from int32) *msg {
	return &msg{Cmd: engaged, From: proto.Int32(from)}
}

func mustMarshal(m *msg) []byte {
	b, err := proto.Marshal(m)
	if err != nil {
		panic(err)
	}
	return b
}

func pack(m *msg) Packet {
	return Packet{Data: mustMarshal(m)}
}
