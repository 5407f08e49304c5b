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

package serializer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fleetops/sysinv/pkg/inventory"
)

// csvHeader is the fixed flattened projection of an inventory record.
// Field count and order are part of the output contract.
var csvHeader = []string{
	"timestamp",
	"hostname",
	"fqdn",
	"os_system",
	"os_release",
	"logical_cpus",
	"mem_total",
	"mem_used_pct",
	"uptime_seconds",
	"disk_count",
	"iface_count",
	"tags",
}

// writeCSV emits exactly one header row and one data row.
func writeCSV(out io.Writer, rec *inventory.Record) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.Write(csvRow(rec)); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func csvRow(rec *inventory.Record) []string {
	return []string{
		rec.Timestamp,
		rec.Hostname,
		rec.FQDN,
		rec.OS.System,
		rec.OS.Release,
		strconv.Itoa(rec.CPU.LogicalCPUs),
		HumanBytes(rec.Memory.TotalBytes),
		strconv.FormatFloat(rec.Memory.PercentUsed, 'f', -1, 64),
		strconv.FormatInt(rec.UptimeSeconds.WholeSeconds(), 10),
		strconv.Itoa(len(rec.Disks)),
		strconv.Itoa(len(rec.Network)),
		strings.Join(rec.Tags, ","),
	}
}

var byteSymbols = [...]string{"B", "KB", "MB", "GB", "TB"}

// HumanBytes formats a byte count with 1024-based units and two decimal
// places, e.g. 17179869184 -> "16.00 GB". Values past the largest unit
// stay in that unit.
func HumanBytes(n uint64) string {
	f := float64(n)
	i := 0
	for f >= 1024 && i < len(byteSymbols)-1 {
		f /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", f, byteSymbols[i])
}
