package main

import (
	"context"
	"flag"
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"strconv"
	"strings"

	slog "github.com/sagernet/sing-box/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/jvrplmlmn/mesos/common"
	"github.com/jvrplmlmn/mesos/future"
	"github.com/jvrplmlmn/mesos/httpc"
	"github.com/jvrplmlmn/mesos/tracing"
)

var (
	pprof     = flag.Bool("pprof", false, "enable pprof")
	pprofPort = flag.Int("pprof-port", 6060, "pprof port")
	debugMode = flag.Bool("debug", false, "debug mode")
	trace     = flag.Bool("trace", false, "export spans to jaeger")

	method      = flag.String("method", "GET", "request method")
	body        = flag.String("body", "", "request body")
	contentType = flag.String("content-type", "", "request content type")
)

type headerFlags map[string]string

func (h headerFlags) String() string {
	return fmt.Sprintf("%v", map[string]string(h))
}

func (h headerFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("header %q is not of the form 'Key: Value'", s)
	}
	h[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}

func buildURL(raw string) (httpc.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return httpc.URL{}, err
	}

	port := uint16(80)
	if p := parsed.Port(); p != "" {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return httpc.URL{}, fmt.Errorf("bad port %q", p)
		}
		port = uint16(n)
	}

	u := httpc.URL{
		Scheme:   parsed.Scheme,
		Port:     port,
		Path:     parsed.Path,
		Fragment: parsed.Fragment,
	}
	if ip, err := netip.ParseAddr(parsed.Hostname()); err == nil {
		u.IP = ip
	} else {
		u.Domain = parsed.Hostname()
	}
	if parsed.RawQuery != "" {
		query, err := httpc.DecodeQuery(parsed.RawQuery)
		if err != nil {
			return httpc.URL{}, err
		}
		u.Query = query
	}
	return u, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func main() {
	headers := make(headerFlags)
	flag.Var(headers, "header", "request header as 'Key: Value', repeatable")
	flag.Parse()

	if *pprof {
		go common.SpawnPprofServer(*pprofPort)
	}
	if *debugMode {
		common.LogFactory.SetLevel(slog.LevelDebug)
	} else {
		common.LogFactory.SetLevel(slog.LevelError)
	}
	common.DebugMode = *debugMode

	if *trace {
		tp, err := tracing.TraceProvider()
		if err != nil {
			slog.Fatal(err)
		}
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{}))
		defer tp.Shutdown(context.Background())
	} else {
		httpc.DefaultClient.BaseContext = tracing.IgnoredContext(context.Background())
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hget [flags] <url>")
		os.Exit(2)
	}
	u, err := buildURL(flag.Arg(0))
	if err != nil {
		slog.Fatal(err)
	}

	var fut *future.Future[httpc.Response]
	switch strings.ToUpper(*method) {
	case "GET":
		fut = httpc.Get(u, headers)
	case "PUT":
		fut = httpc.Put(u, headers, optional(*body), optional(*contentType))
	case "POST":
		fut = httpc.Post(u, headers, optional(*body), optional(*contentType))
	default:
		fut = httpc.DefaultClient.Request(u, strings.ToUpper(*method), headers, optional(*body), optional(*contentType))
	}

	resp, err := fut.Result()
	if err != nil {
		slog.Fatal(err)
	}

	fmt.Println("HTTP/1.1", resp.Status)
	for key, value := range resp.Headers {
		fmt.Printf("%s: %s\n", key, value)
	}
	fmt.Println()
	fmt.Print(resp.Body)
}
