package httpc

// Response is a fully buffered HTTP response. Status is the full status
// line body, e.g. "200 OK"; Code is the parsed status code.
type Response struct {
	Status  string
	Code    int
	Headers map[string]string
	Body    string
}
