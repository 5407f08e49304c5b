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

// Package serializer exports Inventory Records as JSON or CSV.
//
// The two formats are mutually exclusive per run:
//   - JSON: the full record, compact or pretty-printed (indent 2)
//   - CSV: one header row plus one data row with a fixed flattened
//     projection of the record
//
// Usage:
//
//	writer, err := serializer.NewFileWriter(serializer.FormatJSON, path)
//	if err != nil {
//	    return err // unwritable destinations are fatal
//	}
//	defer writer.Close()
//	if err := writer.Serialize(ctx, record); err != nil {
//	    return err
//	}
package serializer

import "context"

// Serializer is an interface for serializing inventory data.
//
// The context parameter is kept for interface consistency; file and
// stdout writes are fast and blocking.
type Serializer interface {
	Serialize(ctx context.Context, record any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
