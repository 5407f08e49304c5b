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
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fleetops/sysinv/pkg/inventory"
	"github.com/fleetops/sysinv/pkg/probe"
)

// DiskCollector enumerates mounted filesystems with usage snapshots.
type DiskCollector interface {
	Collect(ctx context.Context) ([]inventory.Disk, error)
}

type diskCollector struct {
	provider probe.DiskInfoProvider
}

// Collect lists real mounted filesystems in enumeration order.
// Mounts whose usage query is denied are skipped; any other usage
// failure aborts the collection.
func (c *diskCollector) Collect(ctx context.Context) ([]inventory.Disk, error) {
	slog.Debug("collecting disk usage")

	parts, err := c.provider.Partitions(ctx)
	if err != nil {
		return nil, err
	}

	disks := make([]inventory.Disk, 0, len(parts))
	for _, p := range parts {
		usage, err := c.provider.Usage(ctx, p.Mountpoint)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				slog.Debug("skipping mount, permission denied", "mountpoint", p.Mountpoint)
				continue
			}
			return nil, err
		}
		disks = append(disks, inventory.Disk{
			Device:      p.Device,
			Fstype:      p.Fstype,
			TotalBytes:  usage.Total,
			UsedBytes:   usage.Used,
			FreeBytes:   usage.Free,
			PercentUsed: usage.UsedPercent,
		})
	}

	return disks, nil
}
