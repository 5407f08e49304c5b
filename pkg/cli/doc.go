// Package cli implements the command-line interface for the sysinv
// inventory tool.
//
// # Overview
//
// sysinv captures one host inventory snapshot per invocation and
// exports it as JSON or CSV:
//
//	sysinv [--format json|csv] [--out FILE] [--pretty] [--tags a,b]
//
// # Flags
//
//	--format     Output format: json (default) or csv
//	--out        Output file path (default: stdout, overwritten if set)
//	--pretty     Indented JSON output (ignored for csv)
//	--tags       Comma-separated tags attached to the record
//	--log-level  Log verbosity on stderr (default: warn)
//
// # Exit Codes
//
//	0  Success
//	1  Fatal error: malformed arguments, unwritable destination, or an
//	   unguarded probe failure
//
// Recoverable probe conditions (missing load averages, unreadable boot
// time, permission-denied mounts, missing package manager) never fail
// the run; they surface as null fields in the output.
//
// The CLI uses the urfave/cli/v3 framework and delegates to
// specialized packages:
//   - pkg/assembler  - capture orchestration
//   - pkg/collector  - OS probes
//   - pkg/serializer - output formatting
//   - pkg/logging    - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fleetops/sysinv/pkg/cli.version=1.0.0'"
package cli
