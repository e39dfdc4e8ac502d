package httpc

import (
	"net/netip"
	"strings"

	"github.com/samber/lo"
)

// URL is the target of a request. Exactly one of IP (when valid) and
// Domain identifies the host; Query values are emitted in map iteration
// order, which is not guaranteed.
type URL struct {
	Scheme   string
	Domain   string
	IP       netip.Addr
	Port     uint16
	Path     string
	Query    map[string]string
	Fragment string
}

// RequestTarget renders the origin-form target for the request line:
// /path[?query][#fragment], with a single leading slash.
func (u URL) RequestTarget() string {
	var sb strings.Builder
	sb.WriteString("/")
	sb.WriteString(strings.TrimPrefix(u.Path, "/"))
	if len(u.Query) > 0 {
		pairs := lo.MapToSlice(u.Query, func(k, v string) string {
			return k + "=" + v
		})
		sb.WriteString("?")
		sb.WriteString(strings.Join(pairs, "&"))
	}
	if u.Fragment != "" {
		sb.WriteString("#")
		sb.WriteString(u.Fragment)
	}
	return sb.String()
}
