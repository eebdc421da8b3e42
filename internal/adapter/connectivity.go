// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package adapter

import (
	"context"
	"net"
	"net/url"
	"time"
)

// dialConnectivity is the default [Connectivity] implementation: a single
// TCP dial against the backend host. It is consulted once before a sync run
// starts, never during one.
type dialConnectivity struct {
	address string
	timeout time.Duration
}

// NewDialConnectivity builds a [Connectivity] probe for the given backend
// base URL. The port defaults to 443 for https and 80 otherwise when the URL
// does not carry one.
func NewDialConnectivity(baseURL string, timeout time.Duration) (Connectivity, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &dialConnectivity{
		address: net.JoinHostPort(host, port),
		timeout: timeout,
	}, nil
}

func (c *dialConnectivity) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
