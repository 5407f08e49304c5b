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

// Package collector provides the probes that read host state into
// inventory values.
//
// # Overview
//
// Four collectors cover the capture surface:
//
//   - HostCollector    - OS identity, CPU, memory, load, uptime
//   - DiskCollector    - mounted filesystems with usage
//   - NetworkCollector - interfaces, state, IPv4/IPv6 addresses
//   - PackageCollector - installed-package count (Linux only)
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithProcessRunner(fakeRunner),
//	)
//	packages, err := factory.CreatePackageCollector().Collect(ctx)
//
// # Error Handling
//
// Collectors distinguish expected conditions from failures. Readings a
// platform cannot provide (load averages, CPU frequency, boot time, a
// missing package manager, a permission-denied mount) are absorbed at
// the narrowest scope and surface as absent values. Anything else is
// returned as an error and aborts the run.
package collector
