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

// Package defaults centralizes shared timeout constants.
package defaults

import "time"

const (
	// PackageQueryTimeout bounds the package-manager listing subprocess.
	// This is the only externally-blocking call in a collection run and
	// must not hang the whole capture.
	PackageQueryTimeout = 10 * time.Second
)
