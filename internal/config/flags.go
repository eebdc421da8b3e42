// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a diagnostics server address in format [host]:[port]
//	-b backend base URL
//	-d local cache database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-hash-key payload integrity hash key
//	-request-timeout backend request timeout (e.g., "30s", "1m")
//	-sync-interval automatic sync interval (e.g., "15m")
//	-entities comma-separated ordered entity list
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var backendBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var entities string

	flag.Var(&serverAddress, "a", "Diagnostics server address host:port")
	flag.StringVar(&backendBaseURL, "b", "", "EMR backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Payload integrity hash key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Automatic sync interval (e.g., 15m)")
	flag.StringVar(&entities, "entities", "", "Comma-separated ordered entity list")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Backend: Backend{
			BaseURL:        backendBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			Entities:     splitEntities(entities),
		},
		Clinics:      Clinics{},
		JSONFilePath: jsonConfigPath,
	}
}

func splitEntities(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
