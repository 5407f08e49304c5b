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

package inventory

import (
	"encoding/json"
	"math"
	"time"
)

// TimestampLayout formats capture instants as ISO-8601 UTC with a
// trailing Z and microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp formats t as a capture instant.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Record is the single structured snapshot produced per run. It is
// immutable after assembly and discarded after export.
type Record struct {
	Timestamp     string      `json:"timestamp"`
	Hostname      string      `json:"hostname"`
	FQDN          string      `json:"fqdn"`
	OS            OSInfo      `json:"os"`
	CPU           CPUInfo     `json:"cpu"`
	Memory        MemoryInfo  `json:"memory"`
	UptimeSeconds Uptime      `json:"uptime_seconds"`
	Disks         []Disk      `json:"disks"`
	Network       []Interface `json:"network"`
	Packages      *Packages   `json:"packages"`
	Tags          []string    `json:"tags"`
}

// OSInfo holds the raw uname-equivalent identity strings.
type OSInfo struct {
	System    string `json:"system"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	Processor string `json:"processor"`
}

// CPUInfo holds core counts and optional load/frequency readings.
// Nil pointers mark readings the platform does not expose.
type CPUInfo struct {
	PhysicalCores int      `json:"physical_cores"`
	LogicalCPUs   int      `json:"logical_cpus"`
	Load1         *float64 `json:"loadavg_1m"`
	Load5         *float64 `json:"loadavg_5m"`
	Load15        *float64 `json:"loadavg_15m"`
	FreqMHz       *float64 `json:"freq_mhz"`
}

// MemoryInfo is a point-in-time virtual memory snapshot.
type MemoryInfo struct {
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	PercentUsed    float64 `json:"percent_used"`
}

// Disk describes one mounted filesystem and its usage.
type Disk struct {
	Device      string  `json:"device"`
	Fstype      string  `json:"fstype"`
	TotalBytes  uint64  `json:"total_bytes"`
	UsedBytes   uint64  `json:"used_bytes"`
	FreeBytes   uint64  `json:"free_bytes"`
	PercentUsed float64 `json:"percent_used"`
}

// Interface describes one network interface. IsUp is nil when the
// interface is missing from the OS statistics table.
type Interface struct {
	Name string   `json:"iface"`
	IsUp *bool    `json:"is_up"`
	IPv4 []string `json:"ipv4"`
	IPv6 []string `json:"ipv6"`
}

// Packages summarizes the installed-package count for one manager.
type Packages struct {
	Manager string `json:"manager"`
	Count   int    `json:"count"`
}

// Uptime is seconds since boot. NaN marks an unreadable boot time.
// JSON cannot carry NaN, so it is encoded as null and decoded back to
// NaN, keeping round trips lossless.
type Uptime float64

// IsNaN reports whether the boot time was unreadable.
func (u Uptime) IsNaN() bool {
	return math.IsNaN(float64(u))
}

// WholeSeconds returns the uptime truncated to whole seconds, with the
// NaN sentinel coerced to 0.
func (u Uptime) WholeSeconds() int64 {
	if u.IsNaN() {
		return 0
	}
	return int64(u)
}

// MarshalJSON encodes NaN as null and everything else as a number.
func (u Uptime) MarshalJSON() ([]byte, error) {
	if u.IsNaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(u))
}

// UnmarshalJSON decodes null back to the NaN sentinel.
func (u *Uptime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = Uptime(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*u = Uptime(f)
	return nil
}

// HostFacts groups the host-probe portion of a Record.
type HostFacts struct {
	Hostname      string
	FQDN          string
	OS            OSInfo
	CPU           CPUInfo
	Memory        MemoryInfo
	UptimeSeconds Uptime
}
