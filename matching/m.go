package matching

import (
	"errors"
	"fmt"
)

var (
	nop       = msg_NOP.Enum()
	proposal  = msg_PROPOSAL.Enum()
	accept    = msg_ACCEPT.Enum()
	reject    = msg_REJECT.Enum()
	breakup   = msg_BREAKUP.Enum()
	engaged   = msg_ENGAGED.Enum()
	terminate = msg_TERMINATE.Enum()
)

const nmsg = 7

var msgTerminate = &msg{Cmd: terminate}

// Process statuses. An acceptor never returns to free once engaged;
// a proposer toggles between free and waiting until it engages.
const (
	stFree = iota
	stWaiting
	stEngaged
	stDone
)

var (
	// ErrProtocol means a core guarantee of the protocol has been
	// broken upstream: bad preference data, a transport bug, or a
	// logic error. Never locally recoverable.
	ErrProtocol = errors.New("protocol violation")

	// ErrTransport means a packet could not be delivered or decoded.
	// The protocol has no retry story, so this too aborts the run.
	ErrTransport = errors.New("transport failure")
)

const coordAddr = "coord"

func proposerAddr(i int32) string { return fmt.Sprintf("p%d", i) }
func acceptorAddr(i int32) string { return fmt.Sprintf("a%d", i) }

// fromAddr names the process that sent m; the role is implied by cmd.
func fromAddr(m *msg) string {
	switch m.GetCmd() {
	case msg_PROPOSAL:
		return proposerAddr(m.GetFrom())
	case msg_ACCEPT, msg_REJECT, msg_BREAKUP, msg_ENGAGED:
		return acceptorAddr(m.GetFrom())
	case msg_TERMINATE:
		return coordAddr
	}
	return "?"
}
