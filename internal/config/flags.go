// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
)

// netAddress is a host:port string validated on Set. It implements
// pflag.Value and writes straight into the string it points to.
type netAddress string

// String returns the address as set, or an empty string.
func (a *netAddress) String() string {
	if a == nil {
		return ""
	}
	return string(*a)
}

// Set parses the input string of form host:port. An empty host binds every
// interface. The port must be a positive integer, and a non-empty host must
// be "localhost" or an IP address.
func (a *netAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	*a = netAddress(net.JoinHostPort(host, portStr))
	return nil
}

// Type names the value kind in flag usage output.
func (a *netAddress) Type() string {
	return "host:port"
}
