// Package inventory defines the Inventory Record data model.
//
// A Record is one point-in-time snapshot of host state: OS identity,
// CPU, memory, uptime, mounted filesystems, network interfaces,
// installed-package count, and caller-supplied tags. Readings a
// platform cannot provide are explicit nulls (pointer fields, or the
// Uptime NaN sentinel) rather than zero values, so consumers can tell
// "not supported" from "zero".
package inventory
