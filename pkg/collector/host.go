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
	"math"
	"time"

	"github.com/fleetops/sysinv/pkg/inventory"
	"github.com/fleetops/sysinv/pkg/probe"
)

// HostCollector gathers OS identity, CPU, memory, and uptime facts.
type HostCollector interface {
	Collect(ctx context.Context) (*inventory.HostFacts, error)
}

type hostCollector struct {
	provider probe.HostInfoProvider

	// now allows tests to pin the uptime reference instant.
	now func() time.Time
}

// Collect gathers host facts. Identity and memory failures are fatal;
// load averages, CPU identity, and boot time are best-effort and yield
// absent markers instead of errors.
func (c *hostCollector) Collect(ctx context.Context) (*inventory.HostFacts, error) {
	slog.Debug("collecting host facts")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := c.provider.HostInfo(ctx)
	if err != nil {
		return nil, err
	}

	vm, err := c.provider.VirtualMemory(ctx)
	if err != nil {
		return nil, err
	}

	facts := &inventory.HostFacts{
		Hostname: info.Hostname,
		FQDN:     c.provider.FQDN(ctx, info.Hostname),
		OS: inventory.OSInfo{
			System:  info.OS,
			Release: info.KernelVersion,
			Version: info.PlatformVersion,
			Machine: info.KernelArch,
		},
		Memory: inventory.MemoryInfo{
			TotalBytes:     vm.Total,
			AvailableBytes: vm.Available,
			PercentUsed:    vm.UsedPercent,
		},
		UptimeSeconds: c.uptime(ctx),
	}

	c.collectCPU(ctx, facts)

	return facts, nil
}

// collectCPU fills CPU facts in place. Every sub-probe is independently
// best-effort.
func (c *hostCollector) collectCPU(ctx context.Context, facts *inventory.HostFacts) {
	if physical, err := c.provider.CPUCounts(ctx, false); err == nil {
		facts.CPU.PhysicalCores = physical
	} else {
		slog.Warn("physical core count unavailable", "error", err)
	}

	if logical, err := c.provider.CPUCounts(ctx, true); err == nil {
		facts.CPU.LogicalCPUs = logical
	} else {
		slog.Warn("logical cpu count unavailable", "error", err)
	}

	if id, err := c.provider.CPUID(ctx); err == nil {
		facts.OS.Processor = id.ModelName
		if id.MHz > 0 {
			mhz := id.MHz
			facts.CPU.FreqMHz = &mhz
		}
	} else {
		slog.Debug("cpu identity unavailable", "error", err)
	}

	if avg, err := c.provider.LoadAverages(ctx); err == nil {
		l1, l5, l15 := avg.Load1, avg.Load5, avg.Load15
		facts.CPU.Load1 = &l1
		facts.CPU.Load5 = &l5
		facts.CPU.Load15 = &l15
	} else {
		slog.Debug("load averages unavailable", "error", err)
	}
}

// uptime computes seconds since boot, returning the NaN sentinel when
// the boot time cannot be read.
func (c *hostCollector) uptime(ctx context.Context) inventory.Uptime {
	boot, err := c.provider.BootTime(ctx)
	if err != nil || boot == 0 {
		slog.Debug("boot time unavailable", "error", err)
		return inventory.Uptime(math.NaN())
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return inventory.Uptime(now().Sub(time.Unix(int64(boot), 0)).Seconds())
}
