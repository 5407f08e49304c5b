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

package probe

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gnet "github.com/shirou/gopsutil/v4/net"
)

// SystemHost is the production HostInfoProvider backed by gopsutil.
type SystemHost struct{}

// HostInfo implements HostInfoProvider.
func (SystemHost) HostInfo(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, fmt.Errorf("failed to read host info: %w", err)
	}
	return HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		KernelVersion:   info.KernelVersion,
		KernelArch:      info.KernelArch,
		PlatformVersion: info.PlatformVersion,
	}, nil
}

// FQDN implements HostInfoProvider. It resolves the canonical name via
// the system resolver, which consults /etc/hosts before DNS.
func (SystemHost) FQDN(ctx context.Context, hostname string) string {
	if hostname == "" {
		return hostname
	}
	cname, err := net.DefaultResolver.LookupCNAME(ctx, hostname)
	if err != nil || cname == "" {
		return hostname
	}
	return strings.TrimSuffix(cname, ".")
}

// CPUCounts implements HostInfoProvider.
func (SystemHost) CPUCounts(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

// CPUID implements HostInfoProvider. The first reported CPU entry is
// used; multi-socket hosts report homogeneous packages in practice.
func (SystemHost) CPUID(ctx context.Context) (CPUID, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return CPUID{}, fmt.Errorf("failed to read cpu info: %w", err)
	}
	if len(infos) == 0 {
		return CPUID{}, fmt.Errorf("no cpu info reported")
	}
	return CPUID{
		ModelName: infos[0].ModelName,
		MHz:       infos[0].Mhz,
	}, nil
}

// LoadAverages implements HostInfoProvider.
func (SystemHost) LoadAverages(ctx context.Context) (LoadAvg, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAvg{}, err
	}
	return LoadAvg{
		Load1:  avg.Load1,
		Load5:  avg.Load5,
		Load15: avg.Load15,
	}, nil
}

// VirtualMemory implements HostInfoProvider.
func (SystemHost) VirtualMemory(ctx context.Context) (MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	return MemoryStat{
		Total:       vm.Total,
		Available:   vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// BootTime implements HostInfoProvider.
func (SystemHost) BootTime(ctx context.Context) (uint64, error) {
	return host.BootTimeWithContext(ctx)
}

// SystemDisk is the production DiskInfoProvider backed by gopsutil.
type SystemDisk struct{}

// Partitions implements DiskInfoProvider. Virtual and pseudo
// filesystems are excluded.
func (SystemDisk) Partitions(ctx context.Context) ([]Partition, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate partitions: %w", err)
	}
	out := make([]Partition, 0, len(parts))
	for _, p := range parts {
		out = append(out, Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
		})
	}
	return out, nil
}

// Usage implements DiskInfoProvider.
func (SystemDisk) Usage(ctx context.Context, mountpoint string) (DiskUsage, error) {
	usage, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// SystemNet is the production NetInfoProvider backed by gopsutil.
type SystemNet struct{}

// InterfaceAddrs implements NetInfoProvider.
func (SystemNet) InterfaceAddrs(ctx context.Context) ([]InterfaceAddrs, error) {
	ifaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate interfaces: %w", err)
	}
	out := make([]InterfaceAddrs, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}
		out = append(out, InterfaceAddrs{Name: iface.Name, Addrs: addrs})
	}
	return out, nil
}

// InterfaceStats implements NetInfoProvider. The up state is derived
// from the interface flag list.
func (SystemNet) InterfaceStats(ctx context.Context) (map[string]bool, error) {
	ifaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface stats: %w", err)
	}
	stats := make(map[string]bool, len(ifaces))
	for _, iface := range ifaces {
		up := false
		for _, flag := range iface.Flags {
			if strings.EqualFold(flag, "up") {
				up = true
				break
			}
		}
		stats[iface.Name] = up
	}
	return stats, nil
}
