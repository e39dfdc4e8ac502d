package socket

import (
	"errors"
	"io"
	"net"
	"sync"

	"github.com/nadoo/glider/pkg/pool"

	"github.com/jvrplmlmn/mesos/future"
)

// recvBufferSize bounds a single unbounded Recv. The pipeline issues one
// read per response and relies on the transport to buffer the reply.
const recvBufferSize = 1 << 16

type tcpSocket struct {
	mu   sync.Mutex
	conn net.Conn
}

// NewTCP returns an unconnected TCP socket.
func NewTCP() (Socket, error) {
	return &tcpSocket{}, nil
}

func (s *tcpSocket) Connect(addr Address) *future.Future[future.Nothing] {
	p := future.NewPromise[future.Nothing]()
	go func() {
		conn, err := net.Dial("tcp", addr.String())
		if err != nil {
			p.Fail(err)
			return
		}
		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()
		p.Set(future.Nothing{})
	}()
	return p.Future()
}

func (s *tcpSocket) Send(data string) *future.Future[future.Nothing] {
	conn, err := s.current()
	if err != nil {
		return future.Failed[future.Nothing](err)
	}
	p := future.NewPromise[future.Nothing]()
	go func() {
		if _, err := io.WriteString(conn, data); err != nil {
			p.Fail(err)
			return
		}
		p.Set(future.Nothing{})
	}()
	return p.Future()
}

func (s *tcpSocket) Recv(limit int) *future.Future[string] {
	conn, err := s.current()
	if err != nil {
		return future.Failed[string](err)
	}
	size := limit
	if size < 0 {
		size = recvBufferSize
	}
	p := future.NewPromise[string]()
	go func() {
		buf := pool.GetBuffer(size)
		defer pool.PutBuffer(buf)
		n, err := conn.Read(buf)
		if err != nil && err != io.EOF {
			p.Fail(err)
			return
		}
		p.Set(string(buf[:n]))
	}()
	return p.Future()
}

func (s *tcpSocket) Close() error {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (s *tcpSocket) current() (net.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil, errors.New("socket: not connected")
	}
	return s.conn, nil
}
