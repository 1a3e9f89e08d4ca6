package httpd

import "strings"

// Request parsing limits. maxRequestBytes matches the receive buffer
// size; only the first maxRequestBytes-1 bytes of a request are ever
// examined. Token caps bound parsing cost for hostile inputs.
const (
	maxRequestBytes = 4096
	maxMethodLen    = 7
	maxTargetLen    = 255
	maxProtoLen     = 15
)

// Request is one parsed HTTP/1.0 request line. Headers and body, if
// present, are never parsed. Target has query string and fragment
// already stripped.
type Request struct {
	Method string
	Target string
	Proto  string
}

// ParseRequestLine parses the first line of raw into method, target and
// protocol. Fewer than three tokens, or any token over its length cap,
// fails as a malformed request. Tokens after the third are ignored.
func ParseRequestLine(raw []byte) (Request, *StatusError) {
	if len(raw) > maxRequestBytes-1 {
		raw = raw[:maxRequestBytes-1]
	}
	line := string(raw)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSuffix(line, "\r")

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Request{}, errMalformed
	}
	req := Request{Method: fields[0], Target: fields[1], Proto: fields[2]}
	if len(req.Method) > maxMethodLen || len(req.Target) > maxTargetLen || len(req.Proto) > maxProtoLen {
		return Request{}, errMalformed
	}

	// Query string and fragment never reach the filesystem layer.
	if i := strings.IndexAny(req.Target, "?#"); i >= 0 {
		req.Target = req.Target[:i]
	}
	return req, nil
}
