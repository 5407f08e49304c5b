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

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/fleetops/sysinv/pkg/assembler"
	"github.com/fleetops/sysinv/pkg/collector"
	"github.com/fleetops/sysinv/pkg/errors"
	"github.com/fleetops/sysinv/pkg/logging"
	"github.com/fleetops/sysinv/pkg/serializer"
)

const name = "sysinv"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// New builds the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Capture a host inventory snapshot",
		Description: fmt.Sprintf(`Collect a point-in-time snapshot of host state and export it:
  - OS identity, CPU, memory, load averages, uptime
  - Mounted filesystems with usage
  - Network interfaces with state and addresses
  - Installed-package count (Linux)

Version: %s
Commit:  %s
Built:   %s

The snapshot runs once, writes to a file or stdout, and exits.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
				Value: string(serializer.FormatJSON),
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output file path (default: stdout)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
			&cli.StringFlag{
				Name:  "tags",
				Usage: "Comma-separated tags to attach, e.g. 'lab,linux'",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q (supported: %s)",
				format, strings.Join(serializer.SupportedFormats(), ", ")))
	}

	w, err := newWriter(format, cmd.String("out"), cmd.Bool("pretty"))
	if err != nil {
		return err
	}
	defer w.Close()

	a := &assembler.Assembler{
		Factory:    collector.NewDefaultFactory(),
		Serializer: w,
		Tags:       ParseTags(cmd.String("tags")),
	}

	if err := a.Run(ctx); err != nil {
		return err
	}

	return w.Close()
}

func newWriter(format serializer.Format, out string, pretty bool) (*serializer.Writer, error) {
	if strings.TrimSpace(out) == "" {
		return serializer.NewStdoutWriter(format, serializer.WithPretty(pretty)), nil
	}
	return serializer.NewFileWriter(format, out, serializer.WithPretty(pretty))
}

// ParseTags splits a comma-separated tag string, trimming whitespace
// and dropping empty segments while preserving order.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return assembler.NormalizeTags(strings.Split(s, ","))
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := New().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
