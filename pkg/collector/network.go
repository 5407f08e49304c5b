// Copyright (c) 2026, Fleetops, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"context"
	"log/slog"
	"net"
	"strings"

	"github.com/fleetops/sysinv/pkg/inventory"
	"github.com/fleetops/sysinv/pkg/probe"
)

// NetworkCollector lists interfaces with state and address families.
type NetworkCollector interface {
	Collect(ctx context.Context) ([]inventory.Interface, error)
}

type networkCollector struct {
	provider probe.NetInfoProvider
}

// Collect reports every named interface in OS enumeration order.
// Operational state comes from a statistics side table keyed by name;
// interfaces missing from the table get a nil IsUp. Only IPv4 and IPv6
// addresses are kept; other families are ignored.
func (c *networkCollector) Collect(ctx context.Context) ([]inventory.Interface, error) {
	slog.Debug("collecting network interfaces")

	addrs, err := c.provider.InterfaceAddrs(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := c.provider.InterfaceStats(ctx)
	if err != nil {
		return nil, err
	}

	nics := make([]inventory.Interface, 0, len(addrs))
	for _, ia := range addrs {
		nic := inventory.Interface{
			Name: ia.Name,
			IPv4: []string{},
			IPv6: []string{},
		}
		if up, ok := stats[ia.Name]; ok {
			v := up
			nic.IsUp = &v
		}
		for _, raw := range ia.Addrs {
			ip, ok := parseAddress(raw)
			if !ok {
				continue
			}
			if ip.To4() != nil {
				nic.IPv4 = append(nic.IPv4, ip.String())
			} else {
				nic.IPv6 = append(nic.IPv6, ip.String())
			}
		}
		nics = append(nics, nic)
	}

	return nics, nil
}

// parseAddress normalizes a raw OS address string: CIDR prefixes and
// IPv6 zone suffixes are stripped. Returns false for non-IP families
// (e.g., link-layer addresses).
func parseAddress(raw string) (net.IP, bool) {
	s := raw
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '%'); i >= 0 {
		s = s[:i]
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, false
	}
	return ip, true
}
