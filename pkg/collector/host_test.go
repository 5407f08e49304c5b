package collector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/sysinv/pkg/probe"
)

type mockHostProvider struct {
	info    probe.HostInfo
	infoErr error

	fqdn string

	physical, logical int
	countErr          error

	cpuid    probe.CPUID
	cpuidErr error

	load    probe.LoadAvg
	loadErr error

	mem    probe.MemoryStat
	memErr error

	boot    uint64
	bootErr error
}

func (m *mockHostProvider) HostInfo(context.Context) (probe.HostInfo, error) {
	return m.info, m.infoErr
}

func (m *mockHostProvider) FQDN(_ context.Context, hostname string) string {
	if m.fqdn != "" {
		return m.fqdn
	}
	return hostname
}

func (m *mockHostProvider) CPUCounts(_ context.Context, logical bool) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	if logical {
		return m.logical, nil
	}
	return m.physical, nil
}

func (m *mockHostProvider) CPUID(context.Context) (probe.CPUID, error) {
	return m.cpuid, m.cpuidErr
}

func (m *mockHostProvider) LoadAverages(context.Context) (probe.LoadAvg, error) {
	return m.load, m.loadErr
}

func (m *mockHostProvider) VirtualMemory(context.Context) (probe.MemoryStat, error) {
	return m.mem, m.memErr
}

func (m *mockHostProvider) BootTime(context.Context) (uint64, error) {
	return m.boot, m.bootErr
}

func healthyHostProvider() *mockHostProvider {
	return &mockHostProvider{
		info: probe.HostInfo{
			Hostname:        "node-3",
			OS:              "linux",
			KernelVersion:   "6.8.0-45-generic",
			KernelArch:      "x86_64",
			PlatformVersion: "24.04",
		},
		fqdn:     "node-3.fleet.example.com",
		physical: 4,
		logical:  8,
		cpuid:    probe.CPUID{ModelName: "Intel Xeon", MHz: 2800},
		load:     probe.LoadAvg{Load1: 0.5, Load5: 0.4, Load15: 0.3},
		mem:      probe.MemoryStat{Total: 16 << 30, Available: 8 << 30, UsedPercent: 50},
		boot:     uint64(time.Now().Add(-time.Hour).Unix()),
	}
}

func TestHostCollector_Collect(t *testing.T) {
	c := &hostCollector{provider: healthyHostProvider()}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "node-3", facts.Hostname)
	assert.Equal(t, "node-3.fleet.example.com", facts.FQDN)
	assert.Equal(t, "linux", facts.OS.System)
	assert.Equal(t, "6.8.0-45-generic", facts.OS.Release)
	assert.Equal(t, "24.04", facts.OS.Version)
	assert.Equal(t, "x86_64", facts.OS.Machine)
	assert.Equal(t, "Intel Xeon", facts.OS.Processor)

	assert.Equal(t, 4, facts.CPU.PhysicalCores)
	assert.Equal(t, 8, facts.CPU.LogicalCPUs)
	require.NotNil(t, facts.CPU.Load1)
	assert.InDelta(t, 0.5, *facts.CPU.Load1, 1e-9)
	require.NotNil(t, facts.CPU.FreqMHz)
	assert.InDelta(t, 2800, *facts.CPU.FreqMHz, 1e-9)

	assert.Equal(t, uint64(16<<30), facts.Memory.TotalBytes)
	assert.False(t, facts.UptimeSeconds.IsNaN())
	assert.InDelta(t, 3600, float64(facts.UptimeSeconds), 5)
}

func TestHostCollector_LoadAveragesUnsupported(t *testing.T) {
	p := healthyHostProvider()
	p.loadErr = fmt.Errorf("not implemented yet")
	c := &hostCollector{provider: p}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Nil(t, facts.CPU.Load1)
	assert.Nil(t, facts.CPU.Load5)
	assert.Nil(t, facts.CPU.Load15)
}

func TestHostCollector_BootTimeUnreadable(t *testing.T) {
	p := healthyHostProvider()
	p.bootErr = fmt.Errorf("permission denied")
	c := &hostCollector{provider: p}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, facts.UptimeSeconds.IsNaN())
}

func TestHostCollector_CPUIdentityUnavailable(t *testing.T) {
	p := healthyHostProvider()
	p.cpuidErr = fmt.Errorf("cpuinfo unreadable")
	c := &hostCollector{provider: p}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, facts.OS.Processor)
	assert.Nil(t, facts.CPU.FreqMHz)
}

func TestHostCollector_ZeroFrequencyIsAbsent(t *testing.T) {
	p := healthyHostProvider()
	p.cpuid = probe.CPUID{ModelName: "ARM Cortex", MHz: 0}
	c := &hostCollector{provider: p}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ARM Cortex", facts.OS.Processor)
	assert.Nil(t, facts.CPU.FreqMHz)
}

func TestHostCollector_CoreCountsUnavailable(t *testing.T) {
	p := healthyHostProvider()
	p.countErr = fmt.Errorf("no cpu topology")
	c := &hostCollector{provider: p}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, facts.CPU.PhysicalCores)
	assert.Zero(t, facts.CPU.LogicalCPUs)
}

func TestHostCollector_IdentityFailureIsFatal(t *testing.T) {
	p := healthyHostProvider()
	p.infoErr = fmt.Errorf("uname failed")
	c := &hostCollector{provider: p}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
}

func TestHostCollector_MemoryFailureIsFatal(t *testing.T) {
	p := healthyHostProvider()
	p.memErr = fmt.Errorf("meminfo unreadable")
	c := &hostCollector{provider: p}

	_, err := c.Collect(context.Background())
	require.Error(t, err)
}

func TestHostCollector_UptimeReference(t *testing.T) {
	p := healthyHostProvider()
	p.boot = 1000
	c := &hostCollector{
		provider: p,
		now:      func() time.Time { return time.Unix(4600, 0) },
	}

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3600, float64(facts.UptimeSeconds), 1e-9)
}
