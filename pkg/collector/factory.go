package collector

import (
	"runtime"

	"github.com/fleetops/sysinv/pkg/probe"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHostCollector() HostCollector
	CreateDiskCollector() DiskCollector
	CreateNetworkCollector() NetworkCollector
	CreatePackageCollector() PackageCollector
}

// DefaultFactory creates collectors with production probe providers.
type DefaultFactory struct {
	Host   probe.HostInfoProvider
	Disk   probe.DiskInfoProvider
	Net    probe.NetInfoProvider
	Runner probe.ProcessRunner

	// GOOS is the OS family gate for the package collector.
	GOOS string
}

// Option customizes a DefaultFactory.
type Option func(*DefaultFactory)

// WithHostProvider overrides the host probe provider.
func WithHostProvider(p probe.HostInfoProvider) Option {
	return func(f *DefaultFactory) { f.Host = p }
}

// WithDiskProvider overrides the disk probe provider.
func WithDiskProvider(p probe.DiskInfoProvider) Option {
	return func(f *DefaultFactory) { f.Disk = p }
}

// WithNetProvider overrides the network probe provider.
func WithNetProvider(p probe.NetInfoProvider) Option {
	return func(f *DefaultFactory) { f.Net = p }
}

// WithProcessRunner overrides the subprocess runner.
func WithProcessRunner(r probe.ProcessRunner) Option {
	return func(f *DefaultFactory) { f.Runner = r }
}

// NewDefaultFactory creates a factory with production providers.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Host:   probe.SystemHost{},
		Disk:   probe.SystemDisk{},
		Net:    probe.SystemNet{},
		Runner: probe.ExecRunner{},
		GOOS:   runtime.GOOS,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateHostCollector creates a host collector.
func (f *DefaultFactory) CreateHostCollector() HostCollector {
	return &hostCollector{provider: f.Host}
}

// CreateDiskCollector creates a disk collector.
func (f *DefaultFactory) CreateDiskCollector() DiskCollector {
	return &diskCollector{provider: f.Disk}
}

// CreateNetworkCollector creates a network collector.
func (f *DefaultFactory) CreateNetworkCollector() NetworkCollector {
	return &networkCollector{provider: f.Net}
}

// CreatePackageCollector creates a package collector.
func (f *DefaultFactory) CreatePackageCollector() PackageCollector {
	return &packageCollector{
		runner:   f.Runner,
		goos:     f.GOOS,
		managers: DefaultManagers(),
	}
}
