// Package httpd implements a minimal HTTP/1.0 static file server: one
// request line in, one response out, connection closed. Request
// handling is strictly sequential; there is no keep-alive, no method
// besides GET, and no state shared between requests.
package httpd

import (
	"context"
	"errors"
	"log"
	"net"
	"path/filepath"
	"strings"
	"syscall"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/sys/unix"
)

// Server serves files under a single root directory. The root is
// canonicalized once at construction and immutable afterwards. File
// access goes through a billy filesystem chrooted at the root, a second
// containment line behind the resolver's explicit prefix check.
type Server struct {
	root   string // canonical absolute root, no trailing separator
	fsys   billy.Basic
	logger *log.Logger
}

// NewServer canonicalizes rootDir (which must exist) and returns a
// server rooted there. logger may be nil.
func NewServer(rootDir string, logger *log.Logger) (*Server, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	return &Server{
		root:   strings.TrimSuffix(canon, "/"),
		fsys:   osfs.New(canon),
		logger: logger,
	}, nil
}

// Root returns the canonical root directory being served.
func (s *Server) Root() string { return s.root }

// Fetch resolves target under the root and loads the file it names.
// On success it returns the full file contents and their content type.
// Resolution failures keep their own status; any load failure is
// reported as file-not-found.
func (s *Server) Fetch(target string) ([]byte, string, *StatusError) {
	canon, serr := Resolve(s.root, target)
	if serr != nil {
		return nil, "", serr
	}
	rel := strings.TrimPrefix(canon, s.root)
	if rel == "" {
		rel = "/"
	}
	body, err := Load(s.fsys, rel)
	if err != nil {
		return nil, "", errNotFound
	}
	return body, ContentType(canon), nil
}

// ListenAndServe binds addr and serves connections one at a time, in
// acceptance order: each connection is fully handled and closed before
// the next accept. It returns the bind error, or the accept error once
// the listener is closed.
func (s *Server) ListenAndServe(addr string) error {
	lc := net.ListenConfig{Control: reuseAddr}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	if s.logger != nil {
		s.logger.Printf("http server listening on %s root=%q", addr, s.root)
	}
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			if s.logger != nil {
				s.logger.Printf("accept error: %v", err)
			}
			continue
		}
		s.ServeConn(conn)
		conn.Close()
	}
}

func reuseAddr(network, address string, c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	}); err != nil {
		return err
	}
	return serr
}
