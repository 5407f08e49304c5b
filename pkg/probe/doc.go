// Package probe defines the capability interfaces through which
// collectors read OS state, plus their production implementations.
//
// # Overview
//
// Four narrow interfaces cover the introspection surface:
//
//   - HostInfoProvider - host identity, CPU, memory, load, boot time
//   - DiskInfoProvider - mounted filesystems and per-mount usage
//   - NetInfoProvider  - interfaces, addresses, operational state
//   - ProcessRunner    - subprocess execution and path probing
//
// Production implementations (SystemHost, SystemDisk, SystemNet,
// ExecRunner) are backed by github.com/shirou/gopsutil/v4 and os/exec.
// Collectors depend only on the interfaces, so tests substitute mocks
// instead of hitting the live system.
//
// Provider methods return raw OS readings without policy: deciding
// whether a failed reading is recoverable belongs to the collectors.
package probe
