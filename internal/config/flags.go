// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

var (
	errAddressFormat = errors.New("address must look like host:port")
	errAddressPort   = errors.New("port must be within 1..65535")
	errAddressHost   = errors.New("host must be localhost or an IP address")
)

// NetAddress is a flag.Value for the server listen address. An empty host
// listens on every interface.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return errAddressPort
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads server flags from args into a config that holds only
// what was passed on the command line.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var addr NetAddress

	fs := flag.NewFlagSet("go-list-keeper-server", flag.ContinueOnError)

	fs.Var(&addr, "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.Backend, "b", "", "storage backend: sqlite, postgres or file")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.Storage.Files.Path, "f", "", "JSON storage file")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")

	fs.StringVar(&cfg.Adapter.BridgeURL, "bridge-url", "", "device bridge base URL")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "bridge token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "bridge token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "bridge token lifetime")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "HTTP request timeout")
	fs.DurationVar(&cfg.Device.DefaultTimeout, "device-timeout", 0, "default device request timeout")
	fs.DurationVar(&cfg.Workers.TrashPurgeInterval, "purge-interval", 0, "trash purge interval")
	fs.IntVar(&cfg.Trash.MaxEntries, "trash-max-entries", 0, "entries kept by the last-entries retention")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg.Server.HTTPAddress = addr.String()
	return cfg, nil
}
