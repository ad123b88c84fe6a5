package lookup

import (
	"net"
	"net/http"
	"time"
)

const (
	probeAddr = "8.8.8.8:53"
	probeURL  = "http://www.google.com"
)

// Online reports whether the host has a working internet connection.
// A TCP dial to a public DNS resolver is tried first; some networks
// block raw port 53, so a plain HTTP request is the fallback.
func Online(timeout time.Duration) bool {
	return online(probeAddr, probeURL, timeout)
}

func online(addr, rawURL string, timeout time.Duration) bool {
	if conn, err := net.DialTimeout("tcp", addr, timeout); err == nil {
		conn.Close()
		return true
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(rawURL)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
