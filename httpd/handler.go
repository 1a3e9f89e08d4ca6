package httpd

import (
	"io"
	"strings"
)

// ServeConn performs one full request/response cycle on rw and returns
// once the connection should be closed. It never closes rw itself; the
// accept loop (or test harness) owns the connection.
//
// A connection that yields no bytes is treated as dead and gets no
// response. Every other outcome, including every rejection, produces
// exactly one response.
func (s *Server) ServeConn(rw io.ReadWriter) {
	buf := make([]byte, maxRequestBytes-1)
	// A reader may return data together with io.EOF; only an empty
	// read means the connection is dead.
	n, _ := rw.Read(buf)
	if n <= 0 {
		return
	}

	req, serr := ParseRequestLine(buf[:n])
	if serr != nil {
		s.reject(rw, "-", "-", serr)
		return
	}

	// Literal ".." screen before any filesystem resolution; the
	// resolver's containment check is the second line.
	if strings.Contains(req.Target, "..") {
		s.reject(rw, req.Method, req.Target, errTraversal)
		return
	}
	if req.Method != "GET" {
		s.reject(rw, req.Method, req.Target, errOnlyGet)
		return
	}

	body, contentType, serr := s.Fetch(req.Target)
	if serr != nil {
		s.reject(rw, req.Method, req.Target, serr)
		return
	}

	if err := WriteResponse(rw, 200, contentType, body); err != nil {
		// Headers and part of the body may already be on the wire,
		// so this 500 is advisory and its own failure is ignored.
		_ = WriteError(rw, errSendFailed)
		if s.logger != nil {
			s.logger.Printf("%s %s send failed: %v", req.Method, req.Target, err)
		}
		return
	}
	if s.logger != nil {
		s.logger.Printf("%s %s -> 200 %s (%d bytes)", req.Method, req.Target, contentType, len(body))
	}
}

func (s *Server) reject(w io.Writer, method, target string, serr *StatusError) {
	if s.logger != nil {
		s.logger.Printf("%s %s -> %v", method, target, serr)
	}
	_ = WriteError(w, serr)
}
