// Package socket provides the byte-stream transport consumed by the
// HTTP client pipeline: an address type, an asynchronous socket
// abstraction, and IPv4 domain resolution.
package socket

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/jvrplmlmn/mesos/common"
	"github.com/jvrplmlmn/mesos/future"
)

type Address struct {
	IP   netip.Addr
	Port uint16
}

func (a Address) String() string {
	return netip.AddrPortFrom(a.IP, a.Port).String()
}

// Socket is an asynchronous byte-stream connection. Connect must be
// called before Send or Recv; each operation resolves its future from
// the goroutine performing the I/O.
type Socket interface {
	Connect(addr Address) *future.Future[future.Nothing]
	Send(data string) *future.Future[future.Nothing]
	// Recv performs a single read of up to limit bytes; limit < 0 reads
	// with an unbounded (implementation-sized) buffer.
	Recv(limit int) *future.Future[string]
	Close() error
}

// Resolver maps a domain name to an IPv4 address.
type Resolver func(domain string) (netip.Addr, error)

var resolveCache = common.NewTTLCache[netip.Addr](30*time.Second, 5*time.Minute)

// ResolveIPv4 is the default Resolver, caching successful lookups for a
// short TTL.
func ResolveIPv4(domain string) (netip.Addr, error) {
	if ip, ok := resolveCache.Get(domain); ok {
		return ip, nil
	}
	addrs, err := net.DefaultResolver.LookupNetIP(context.Background(), "ip4", domain)
	if err != nil {
		return netip.Addr{}, err
	}
	if len(addrs) == 0 {
		return netip.Addr{}, fmt.Errorf("no A records for %q", domain)
	}
	ip := addrs[0].Unmap()
	resolveCache.Set(domain, ip)
	return ip, nil
}
