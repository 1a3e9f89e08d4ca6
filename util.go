package main

import "strings"

// listenAddr turns a bare port number into a listen address. Values
// already containing a colon ("0.0.0.0:8080", ":8080") pass through.
func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
