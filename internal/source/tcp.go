package source

import (
	"bufio"
	"fmt"
	"net"
	"regexp"
	"time"
)

// tcpKeepAliveInterval approximates the spec's "idle 10s, interval 5s"
// keepalive contract. Go's net.TCPConn exposes a single keep-alive period
// on most platforms rather than separate idle/interval knobs, so we use
// the tighter of the two values to stay within the spirit of the setting.
const tcpKeepAliveInterval = 5 * time.Second

// StartTCPListener binds preferring the IPv6 any-address [::]:port,
// falling back to 0.0.0.0:port, and spawns one worker per accepted
// connection. It returns a StartupError if neither bind succeeds.
func StartTCPListener(port int, lineStart *regexp.Regexp, sink Sink) error {
	addr := fmt.Sprintf("[::]:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		addr = fmt.Sprintf("0.0.0.0:%d", port)
		ln, err = net.Listen("tcp", addr)
		if err != nil {
			return &StartupError{Op: "bind listener", Err: err}
		}
	}

	go acceptLoop(ln, lineStart, sink)
	return nil
}

func acceptLoop(ln net.Listener, lineStart *regexp.Regexp, sink Sink) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			sink <- Event{Kind: EventError, Text: "accept error: " + err.Error()}
			return
		}
		go handleConn(conn, lineStart, sink)
	}
}

func handleConn(conn net.Conn, lineStart *regexp.Regexp, sink Sink) {
	defer conn.Close()
	peer := conn.RemoteAddr().String()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetKeepAlivePeriod(tcpKeepAliveInterval)
	}

	sink <- Event{Kind: EventConnected, Peer: peer}
	sink <- Event{Kind: EventSystemLine, Text: fmt.Sprintf("[connected: %s]", peer)}

	agg := NewAggregator(lineStart)
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if out, ok := agg.Feed(scanner.Text()); ok {
			sink <- Event{Kind: EventLine, Text: out}
		}
	}
	if err := scanner.Err(); err != nil {
		sink <- Event{Kind: EventError, Text: fmt.Sprintf("read error from %s: %v", peer, err)}
	}
	if out, ok := agg.Flush(); ok {
		sink <- Event{Kind: EventLine, Text: out}
	}

	sink <- Event{Kind: EventSystemLine, Text: fmt.Sprintf("[disconnected: %s]", peer)}
	sink <- Event{Kind: EventDisconnected, Peer: peer}
}
