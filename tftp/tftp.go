package tftp

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tftp "github.com/pin/tftp/v3"

	"static-http-server/httpd"
)

// requestTarget normalizes a TFTP filename into the URL-style target
// the resolver expects. Requests naming ".." anywhere are refused
// before resolution, mirroring the HTTP frontend's screen.
func requestTarget(filename string) (string, error) {
	name := strings.TrimSpace(filename)
	if strings.Contains(name, "..") {
		return "", os.ErrPermission
	}
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return name, nil
}

// StartTFTPServer serves read requests for files under srv's root,
// through the same path resolution and containment checks as the HTTP
// frontend. Write requests are not handled.
func StartTFTPServer(addr string, srv *httpd.Server, logger *log.Logger) (*tftp.Server, error) {
	readHandler := func(filename string, rf io.ReaderFrom) error {
		target, err := requestTarget(filename)
		if err != nil {
			if logger != nil {
				logger.Printf("RRQ %q refused: %v", filename, err)
			}
			return err
		}
		body, _, serr := srv.Fetch(target)
		if serr != nil {
			if logger != nil {
				logger.Printf("RRQ %q -> %v", filename, serr)
			}
			return os.ErrNotExist
		}
		if logger != nil {
			logger.Printf("RRQ %q -> %d bytes", filename, len(body))
		}
		_, err = rf.ReadFrom(bytes.NewReader(body))
		return err
	}

	// Write handler not used.
	s := tftp.NewServer(readHandler, nil)
	s.SetTimeout(5 * time.Second)

	go func() {
		if logger != nil {
			logger.Printf("TFTP server listening on %s, root=%q", addr, srv.Root())
		}
		if err := s.ListenAndServe(addr); err != nil {
			if logger != nil {
				logger.Printf("TFTP server error: %v", err)
			}
		}
	}()
	return s, nil
}
