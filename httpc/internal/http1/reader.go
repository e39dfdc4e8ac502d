// Package http1 parses HTTP/1.x responses off the wire. A buffer may
// carry several back-to-back responses; DecodeAll splits them apart.
package http1

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParsedResponse is a minimal representation parsed from the wire.
type ParsedResponse struct {
	Proto      string
	StatusCode int
	// Status is the code plus reason phrase, e.g. "200 OK".
	Status string
	Header map[string]string
	Body   string
}

// ReadResponse parses one response from br. The body is consumed
// according to Transfer-Encoding: chunked, else Content-Length, else
// everything up to EOF (a close-delimited body).
func ReadResponse(br *bufio.Reader) (*ParsedResponse, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/1.") {
		return nil, io.ErrUnexpectedEOF
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	status := parts[1]
	if len(parts) == 3 {
		status += " " + parts[2]
	}

	hdr, err := readHeaders(br)
	if err != nil {
		return nil, err
	}

	var body string
	switch {
	case hasChunkedTE(hdr):
		body, err = readChunkedBody(br)
	case getHeader(hdr, "Content-Length") != "":
		var n int
		n, err = strconv.Atoi(strings.TrimSpace(getHeader(hdr, "Content-Length")))
		if err != nil || n < 0 {
			return nil, io.ErrUnexpectedEOF
		}
		buf := make([]byte, n)
		_, err = io.ReadFull(br, buf)
		body = string(buf)
	default:
		var buf []byte
		buf, err = io.ReadAll(br)
		body = string(buf)
	}
	if err != nil {
		return nil, err
	}

	return &ParsedResponse{
		Proto:      parts[0],
		StatusCode: code,
		Status:     status,
		Header:     hdr,
		Body:       body,
	}, nil
}

// DecodeAll parses every response in buf. It returns ok=false if any
// byte of the buffer fails to parse.
func DecodeAll(buf string) ([]*ParsedResponse, bool) {
	br := bufio.NewReader(strings.NewReader(buf))
	var out []*ParsedResponse
	for {
		if _, err := br.Peek(1); err == io.EOF {
			return out, true
		}
		resp, err := ReadResponse(br)
		if err != nil {
			return nil, false
		}
		out = append(out, resp)
	}
}

func readHeaders(br *bufio.Reader) (map[string]string, error) {
	h := make(map[string]string)
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return h, nil
		}
		i := strings.IndexByte(line, ':')
		if i <= 0 {
			return nil, io.ErrUnexpectedEOF
		}
		k := canonicalHeaderKey(strings.TrimSpace(line[:i]))
		h[k] = strings.TrimSpace(line[i+1:])
	}
}

// readLine consumes up to the next '\n', stripping only the CRLF
// terminator. A bare CR inside the line is data and is kept.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func readChunkedBody(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		line, err := readLine(br)
		if err != nil {
			return "", err
		}
		// Drop any chunk extension.
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		n, err := strconv.ParseInt(strings.TrimSpace(line), 16, 64)
		if err != nil || n < 0 {
			return "", io.ErrUnexpectedEOF
		}
		if n == 0 {
			// Trailers, if any, run until a blank line.
			for {
				line, err := readLine(br)
				if err != nil {
					return "", err
				}
				if line == "" {
					return sb.String(), nil
				}
			}
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(br, buf); err != nil {
			return "", err
		}
		sb.Write(buf)
		// Chunk data is followed by CRLF.
		if _, err := readLine(br); err != nil {
			return "", err
		}
	}
}

func hasChunkedTE(h map[string]string) bool {
	return strings.Contains(strings.ToLower(getHeader(h, "Transfer-Encoding")), "chunked")
}

func getHeader(h map[string]string, k string) string {
	return h[canonicalHeaderKey(k)]
}

// Very small canonicalizer to avoid importing textproto here.
func canonicalHeaderKey(s string) string {
	b := []byte(strings.ToLower(s))
	upper := true
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			if upper {
				b[i] = byte(c - 'a' + 'A')
			}
			upper = false
			continue
		}
		upper = c == '-'
	}
	return string(b)
}
