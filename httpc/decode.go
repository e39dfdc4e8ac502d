package httpc

import (
	"fmt"

	"github.com/jvrplmlmn/mesos/httpc/internal/http1"
)

// decodeResponse turns the raw bytes received on the socket into a
// Response. A buffer holding more than one response is tolerated: all
// but the first are dropped with a warning.
func (c *Client) decodeResponse(buffer string) (Response, error) {
	responses, ok := http1.DecodeAll(buffer)
	if !ok || len(responses) == 0 {
		return Response{}, fmt.Errorf("%w:\n%s\n", ErrDecode, buffer)
	}
	if len(responses) > 1 {
		c.logger.Warn("received more than 1 HTTP response")
	}

	parsed := responses[0]
	return Response{
		Status:  parsed.Status,
		Code:    parsed.StatusCode,
		Headers: parsed.Header,
		Body:    parsed.Body,
	}, nil
}
