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

package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fleetops/sysinv/pkg/defaults"
	"github.com/fleetops/sysinv/pkg/errors"
	"github.com/fleetops/sysinv/pkg/inventory"
	"github.com/fleetops/sysinv/pkg/probe"
)

// PackageCollector counts installed packages via the first detected
// package manager. A nil result (with nil error) means no supported
// manager was found or the query failed; both are expected conditions.
type PackageCollector interface {
	Collect(ctx context.Context) (*inventory.Packages, error)
}

// ManagerProbe describes how to detect and query one package manager.
// Detection checks ProbePath; Command lists one package per line.
type ManagerProbe struct {
	Name      string
	ProbePath string
	Command   []string
}

// DefaultManagers returns the ordered manager probe table. Order is
// significant: the first manager whose probe path exists is queried and
// the rest are never consulted.
func DefaultManagers() []ManagerProbe {
	return []ManagerProbe{
		{
			Name:      "dpkg",
			ProbePath: "/usr/bin/dpkg-query",
			Command:   []string{"dpkg-query", "-f", "${binary:Package}\n", "-W"},
		},
		{
			Name:      "rpm",
			ProbePath: "/usr/bin/rpm",
			Command:   []string{"rpm", "-qa"},
		},
	}
}

type packageCollector struct {
	runner   probe.ProcessRunner
	goos     string
	managers []ManagerProbe
}

// Collect detects and queries at most one package manager per run.
// Non-Linux hosts are skipped entirely. The listing subprocess is
// bounded by defaults.PackageQueryTimeout; timeout or any execution
// failure yields a nil result rather than an error.
func (c *packageCollector) Collect(ctx context.Context) (*inventory.Packages, error) {
	if !strings.EqualFold(c.goos, "linux") {
		slog.Debug("skipping package count on non-linux host", "goos", c.goos)
		return nil, nil
	}

	for _, m := range c.managers {
		if !c.runner.PathExists(m.ProbePath) {
			continue
		}

		slog.Debug("counting installed packages", "manager", m.Name)

		qctx, cancel := context.WithTimeout(ctx, defaults.PackageQueryTimeout)
		out, err := c.runner.Output(qctx, m.Command[0], m.Command[1:]...)
		timedOut := qctx.Err() != nil
		cancel()
		if err != nil {
			code := errors.ErrCodeInternal
			if timedOut {
				code = errors.ErrCodeTimeout
			}
			slog.Warn("package query failed",
				"manager", m.Name,
				"error", errors.Wrap(code, "package listing failed", err).Error())
			return nil, nil
		}

		return &inventory.Packages{
			Manager: m.Name,
			Count:   countNonBlankLines(string(out)),
		}, nil
	}

	slog.Debug("no supported package manager found")
	return nil, nil
}

func countNonBlankLines(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
