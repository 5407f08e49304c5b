package collector

import (
	"context"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/sysinv/pkg/probe"
)

type mockDiskProvider struct {
	parts    []probe.Partition
	partsErr error

	usage    map[string]probe.DiskUsage
	usageErr map[string]error
}

func (m *mockDiskProvider) Partitions(context.Context) ([]probe.Partition, error) {
	return m.parts, m.partsErr
}

func (m *mockDiskProvider) Usage(_ context.Context, mountpoint string) (probe.DiskUsage, error) {
	if err, ok := m.usageErr[mountpoint]; ok {
		return probe.DiskUsage{}, err
	}
	return m.usage[mountpoint], nil
}

func TestDiskCollector_Collect(t *testing.T) {
	p := &mockDiskProvider{
		parts: []probe.Partition{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sdb1", Mountpoint: "/data", Fstype: "xfs"},
		},
		usage: map[string]probe.DiskUsage{
			"/":     {Total: 100, Used: 40, Free: 60, UsedPercent: 40},
			"/data": {Total: 200, Used: 150, Free: 50, UsedPercent: 75},
		},
	}
	c := &diskCollector{provider: p}

	disks, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, disks, 2)

	// Enumeration order is preserved.
	assert.Equal(t, "/dev/sda1", disks[0].Device)
	assert.Equal(t, "ext4", disks[0].Fstype)
	assert.Equal(t, uint64(40), disks[0].UsedBytes)
	assert.Equal(t, "/dev/sdb1", disks[1].Device)
	assert.InDelta(t, 75, disks[1].PercentUsed, 1e-9)
}

func TestDiskCollector_PermissionDeniedMountSkipped(t *testing.T) {
	p := &mockDiskProvider{
		parts: []probe.Partition{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sdc1", Mountpoint: "/restricted", Fstype: "ext4"},
			{Device: "/dev/sdb1", Mountpoint: "/data", Fstype: "xfs"},
		},
		usage: map[string]probe.DiskUsage{
			"/":     {Total: 100, Used: 40, Free: 60, UsedPercent: 40},
			"/data": {Total: 200, Used: 150, Free: 50, UsedPercent: 75},
		},
		usageErr: map[string]error{
			"/restricted": fmt.Errorf("statfs: %w", fs.ErrPermission),
		},
	}
	c := &diskCollector{provider: p}

	disks, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, disks, 2)
	assert.Equal(t, "/dev/sda1", disks[0].Device)
	assert.Equal(t, "/dev/sdb1", disks[1].Device)
}

func TestDiskCollector_OtherUsageErrorIsFatal(t *testing.T) {
	p := &mockDiskProvider{
		parts: []probe.Partition{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
		},
		usageErr: map[string]error{
			"/": fmt.Errorf("device disappeared"),
		},
	}
	c := &diskCollector{provider: p}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
}

func TestDiskCollector_EnumerationErrorIsFatal(t *testing.T) {
	c := &diskCollector{provider: &mockDiskProvider{partsErr: fmt.Errorf("mounts unreadable")}}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
}

func TestDiskCollector_NoMounts(t *testing.T) {
	c := &diskCollector{provider: &mockDiskProvider{}}

	disks, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, disks)
	assert.Empty(t, disks)
}
