// Package httpc is an asynchronous HTTP/1.1 client pipeline. A request
// resolves its target address, connects a socket, sends a formatted
// request, receives the raw reply and decodes it, as one future chain
// that fails on the first broken stage.
package httpc

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sagernet/sing-box/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/maps"

	"github.com/jvrplmlmn/mesos/common"
	"github.com/jvrplmlmn/mesos/future"
	"github.com/jvrplmlmn/mesos/socket"
	"github.com/jvrplmlmn/mesos/tracing"
)

// Client drives the request pipeline. NewSocket and Resolve are
// injectable, primarily for tests. BaseContext seeds the span of every
// request; wrap it with tracing.IgnoredContext to turn off tracing for
// this client.
type Client struct {
	NewSocket   func() (socket.Socket, error)
	Resolve     socket.Resolver
	BaseContext context.Context

	logger log.ContextLogger
}

func NewClient() *Client {
	return &Client{
		NewSocket:   socket.NewTCP,
		Resolve:     socket.ResolveIPv4,
		BaseContext: context.Background(),
		logger:      common.NewLogger("httpc"),
	}
}

// DefaultClient serves the package-level request helpers.
var DefaultClient = NewClient()

func Get(u URL, headers map[string]string) *future.Future[Response] {
	return DefaultClient.Get(u, headers)
}

func Put(u URL, headers map[string]string, body, contentType *string) *future.Future[Response] {
	return DefaultClient.Put(u, headers, body, contentType)
}

func Post(u URL, headers map[string]string, body, contentType *string) *future.Future[Response] {
	return DefaultClient.Post(u, headers, body, contentType)
}

func (c *Client) Get(u URL, headers map[string]string) *future.Future[Response] {
	return c.Request(u, "GET", headers, nil, nil)
}

func (c *Client) Put(u URL, headers map[string]string, body, contentType *string) *future.Future[Response] {
	if body == nil && contentType != nil {
		return future.Failed[Response](
			fmt.Errorf("%w: attempted a PUT with a Content-Type but no body", ErrValidation))
	}
	return c.Request(u, "PUT", headers, body, contentType)
}

func (c *Client) Post(u URL, headers map[string]string, body, contentType *string) *future.Future[Response] {
	if body == nil && contentType != nil {
		return future.Failed[Response](
			fmt.Errorf("%w: attempted a POST with a Content-Type but no body", ErrValidation))
	}
	return c.Request(u, "POST", headers, body, contentType)
}

// Request issues a single HTTP/1.1 request over a fresh connection.
// Validation and resolution failures surface before any socket is
// touched; afterwards the stages connect, send, recv and decode run
// strictly in sequence, the first failure short-circuiting the rest.
func (c *Client) Request(u URL, method string, headers map[string]string, body, contentType *string) *future.Future[Response] {
	if u.Scheme != "http" {
		return future.Failed[Response](
			fmt.Errorf("%w: unsupported URL scheme %q", ErrValidation, u.Scheme))
	}

	addr := socket.Address{Port: u.Port}
	switch {
	case u.IP.IsValid():
		addr.IP = u.IP
	case u.Domain == "":
		return future.Failed[Response](
			fmt.Errorf("%w: missing URL domain or IP", ErrValidation))
	default:
		ip, err := c.Resolve(u.Domain)
		if err != nil {
			return future.Failed[Response](
				fmt.Errorf("%w: failed to determine IP of domain %q: %v", ErrResolution, u.Domain, err))
		}
		addr.IP = ip
	}

	sock, err := c.NewSocket()
	if err != nil {
		return future.Failed[Response](
			fmt.Errorf("%w: failed to create socket: %v", ErrTransport, err))
	}

	requestID := uuid.NewString()
	ctx, span := tracing.GetTracer(c.BaseContext, "httpc").Start(
		c.BaseContext, "request",
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("net.peer", addr.String()),
			attribute.String("request.id", requestID),
		))
	c.logger.Debug(requestID, " ", method, " ", addr.String(), u.RequestTarget())

	out := formatRequest(ctx, addr, u, method, headers, body, contentType)

	connected := transport(sock.Connect(addr), "connect to "+addr.String())
	sent := future.ThenFuture(connected, func(future.Nothing) *future.Future[future.Nothing] {
		span.AddEvent("connected")
		return transport(sock.Send(out), "send request")
	})
	received := future.ThenFuture(sent, func(future.Nothing) *future.Future[string] {
		span.AddEvent("sent")
		return transport(sock.Recv(-1), "receive response")
	})
	result := future.Then(received, func(raw string) (Response, error) {
		span.AddEvent("received")
		return c.decodeResponse(raw)
	})

	result.OnComplete(func(_ Response, err error) {
		_ = sock.Close()
		if err != nil {
			span.RecordError(err)
			c.logger.Debug(requestID, " failed: ", err)
		}
		span.End()
	})
	return result
}

// transport rebrands a stage failure as an ErrTransport, leaving the
// success value untouched.
func transport[T any](f *future.Future[T], stage string) *future.Future[T] {
	p := future.NewPromise[T]()
	f.OnComplete(func(v T, err error) {
		if err != nil {
			p.Fail(fmt.Errorf("%w: failed to %s: %v", ErrTransport, stage, err))
			return
		}
		p.Set(v)
	})
	return p.Future()
}

// formatRequest renders the full wire form of the request: request
// line, merged headers, blank line, body.
func formatRequest(ctx context.Context, addr socket.Address, u URL, method string, extra map[string]string, body, contentType *string) string {
	var out strings.Builder

	out.WriteString(method)
	out.WriteString(" ")
	out.WriteString(u.RequestTarget())
	out.WriteString(" HTTP/1.1\r\n")

	// Set up the headers as necessary.
	headers := make(map[string]string, len(extra)+4)
	maps.Copy(headers, extra)

	// Need to specify the 'Host' header.
	headers["Host"] = addr.String()

	// Tell the server to close the connection when it's done.
	headers["Connection"] = "close"

	// Overwrite Content-Type if necessary.
	if contentType != nil {
		headers["Content-Type"] = *contentType
	}

	// Make sure the Content-Length is set correctly if necessary.
	if body != nil {
		headers["Content-Length"] = strconv.Itoa(len(*body))
	}

	// Carry the active span, if any, to the server.
	tracing.InjectHeaders(ctx, headers)

	for key, value := range headers {
		out.WriteString(key)
		out.WriteString(": ")
		out.WriteString(value)
		out.WriteString("\r\n")
	}
	out.WriteString("\r\n")

	if body != nil {
		out.WriteString(*body)
	}
	return out.String()
}
