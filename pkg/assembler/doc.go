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

// Package assembler sequences the collectors into a single Inventory
// Record capture.
//
// Collection is deliberately synchronous: probes run one after another
// and the record has a single owner for its whole lifetime. The only
// externally blocking call (the package-manager subprocess) carries its
// own deadline inside the package collector.
//
// Usage:
//
//	a := &assembler.Assembler{
//	    Factory:    collector.NewDefaultFactory(),
//	    Serializer: w,
//	    Tags:       tags,
//	}
//	if err := a.Run(ctx); err != nil {
//	    // fatal: a probe failed in a non-recoverable way
//	}
package assembler
