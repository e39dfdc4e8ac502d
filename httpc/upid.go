package httpc

import (
	"fmt"
	"strings"

	"github.com/jvrplmlmn/mesos/future"
	"github.com/jvrplmlmn/mesos/socket"
)

// UPID identifies an actor: its registered ID and the network address
// its HTTP endpoints are served on.
type UPID struct {
	ID      string
	Address socket.Address
}

// GetFrom issues a GET against an actor's endpoint. path, if given, is
// joined onto the actor's ID with a '/'; query, if given, is a raw
// query string (an optional leading '?' is tolerated) decoded via
// DecodeQuery.
func (c *Client) GetFrom(upid UPID, path, query *string, headers map[string]string) *future.Future[Response] {
	u := upidURL(upid, path)

	if query != nil {
		q, err := DecodeQuery(strings.TrimPrefix(*query, "?"))
		if err != nil {
			return future.Failed[Response](
				fmt.Errorf("%w: failed to decode HTTP query string: %v", ErrValidation, err))
		}
		u.Query = q
	}

	return c.Get(u, headers)
}

// PostTo issues a POST against an actor's endpoint.
func (c *Client) PostTo(upid UPID, path *string, headers map[string]string, body, contentType *string) *future.Future[Response] {
	return c.Post(upidURL(upid, path), headers, body, contentType)
}

func GetFrom(upid UPID, path, query *string, headers map[string]string) *future.Future[Response] {
	return DefaultClient.GetFrom(upid, path, query, headers)
}

func PostTo(upid UPID, path *string, headers map[string]string, body, contentType *string) *future.Future[Response] {
	return DefaultClient.PostTo(upid, path, headers, body, contentType)
}

func upidURL(upid UPID, path *string) URL {
	u := URL{
		Scheme: "http",
		IP:     upid.Address.IP,
		Port:   upid.Address.Port,
		Path:   upid.ID,
	}
	if path != nil {
		u.Path = u.Path + "/" + *path
	}
	return u
}
