package assembler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fleetops/sysinv/pkg/collector"
	"github.com/fleetops/sysinv/pkg/inventory"
	"github.com/fleetops/sysinv/pkg/serializer"
)

// Assembler merges collector outputs and caller-supplied tags into one
// Inventory Record and hands it to the configured serializer.
type Assembler struct {
	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer used for output. If nil, a compact JSON
	// stdout writer is used.
	Serializer serializer.Serializer

	// Tags are attached to the record verbatim, in order.
	Tags []string

	// Clock returns the capture instant. If nil, time.Now is used.
	Clock func() time.Time
}

// Run collects the record and serializes it.
func (a *Assembler) Run(ctx context.Context) error {
	rec, err := a.Collect(ctx)
	if err != nil {
		return err
	}

	if a.Serializer == nil {
		a.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := a.Serializer.Serialize(ctx, rec); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Collect runs the collectors in sequence and assembles the record.
// Collectors run one at a time; each either completes or resolves its
// recoverable conditions to absent values before the next starts.
func (a *Assembler) Collect(ctx context.Context) (*inventory.Record, error) {
	if a.Factory == nil {
		a.Factory = collector.NewDefaultFactory()
	}
	clock := a.Clock
	if clock == nil {
		clock = time.Now
	}

	slog.Debug("starting inventory capture")
	start := time.Now()

	host, err := a.Factory.CreateHostCollector().Collect(ctx)
	if err != nil {
		slog.Error("failed to collect host facts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to collect host facts: %w", err)
	}

	disks, err := a.Factory.CreateDiskCollector().Collect(ctx)
	if err != nil {
		slog.Error("failed to collect disks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to collect disks: %w", err)
	}

	nics, err := a.Factory.CreateNetworkCollector().Collect(ctx)
	if err != nil {
		slog.Error("failed to collect network interfaces", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to collect network interfaces: %w", err)
	}

	pkgs, err := a.Factory.CreatePackageCollector().Collect(ctx)
	if err != nil {
		slog.Error("failed to collect packages", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to collect packages: %w", err)
	}

	rec := &inventory.Record{
		Timestamp:     inventory.Timestamp(clock()),
		Hostname:      host.Hostname,
		FQDN:          host.FQDN,
		OS:            host.OS,
		CPU:           host.CPU,
		Memory:        host.Memory,
		UptimeSeconds: host.UptimeSeconds,
		Disks:         disks,
		Network:       nics,
		Packages:      pkgs,
		Tags:          NormalizeTags(a.Tags),
	}

	slog.Debug("inventory capture complete",
		slog.Int("disks", len(rec.Disks)),
		slog.Int("interfaces", len(rec.Network)),
		slog.Duration("elapsed", time.Since(start)))

	return rec, nil
}

// NormalizeTags trims whitespace and drops empty entries while keeping
// order and duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
