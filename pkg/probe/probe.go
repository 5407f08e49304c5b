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

import "context"

// HostInfo describes the host identity as reported by the OS.
type HostInfo struct {
	Hostname        string
	OS              string
	KernelVersion   string
	KernelArch      string
	PlatformVersion string
}

// CPUID describes the processor as reported by the OS.
type CPUID struct {
	ModelName string
	MHz       float64
}

// MemoryStat is a point-in-time virtual memory reading.
type MemoryStat struct {
	Total       uint64
	Available   uint64
	UsedPercent float64
}

// LoadAvg holds the 1, 5, and 15 minute load averages.
type LoadAvg struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// HostInfoProvider exposes host, CPU, and memory introspection.
// Each method maps to a single OS facility so callers can decide
// per-probe whether a failure is recoverable.
type HostInfoProvider interface {
	// HostInfo returns the uname-equivalent identity strings.
	HostInfo(ctx context.Context) (HostInfo, error)

	// FQDN resolves the fully qualified name for the given hostname,
	// returning the hostname unchanged when resolution fails.
	FQDN(ctx context.Context, hostname string) string

	// CPUCounts returns the number of logical or physical CPUs.
	CPUCounts(ctx context.Context, logical bool) (int, error)

	// CPUID returns processor identity and current frequency.
	CPUID(ctx context.Context) (CPUID, error)

	// LoadAverages returns system load averages. Platforms without
	// load-average support return an error.
	LoadAverages(ctx context.Context) (LoadAvg, error)

	// VirtualMemory returns a memory usage snapshot.
	VirtualMemory(ctx context.Context) (MemoryStat, error)

	// BootTime returns the boot instant as seconds since the epoch.
	BootTime(ctx context.Context) (uint64, error)
}

// Partition describes one mounted filesystem.
type Partition struct {
	Device     string
	Mountpoint string
	Fstype     string
}

// DiskUsage is a usage snapshot for a single mount point.
type DiskUsage struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// DiskInfoProvider exposes mounted-filesystem introspection.
type DiskInfoProvider interface {
	// Partitions lists real (non-virtual) mounted filesystems in
	// OS enumeration order.
	Partitions(ctx context.Context) ([]Partition, error)

	// Usage returns the usage snapshot for a mount point.
	Usage(ctx context.Context, mountpoint string) (DiskUsage, error)
}

// InterfaceAddrs pairs an interface name with its raw address strings.
// Addresses are reported exactly as the OS returns them and may carry
// CIDR prefixes and IPv6 zone suffixes.
type InterfaceAddrs struct {
	Name  string
	Addrs []string
}

// NetInfoProvider exposes network interface introspection.
type NetInfoProvider interface {
	// InterfaceAddrs lists interfaces and their addresses in OS
	// enumeration order.
	InterfaceAddrs(ctx context.Context) ([]InterfaceAddrs, error)

	// InterfaceStats returns the operational-state side table keyed by
	// interface name. Interfaces may be missing from the table.
	InterfaceStats(ctx context.Context) (map[string]bool, error)
}

// ProcessRunner abstracts subprocess execution and executable discovery
// so collectors that shell out can be tested without a live system.
type ProcessRunner interface {
	// PathExists reports whether a filesystem path exists.
	PathExists(path string) bool

	// Output runs the named command and returns its standard output.
	// The command is killed when ctx is done.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
