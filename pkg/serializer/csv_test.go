package serializer

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/sysinv/pkg/inventory"
)

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want string
	}{
		{name: "zero", in: 0, want: "0.00 B"},
		{name: "one kilobyte", in: 1024, want: "1.00 KB"},
		{name: "one and a half kilobytes", in: 1536, want: "1.50 KB"},
		{name: "sixteen gigabytes", in: 17179869184, want: "16.00 GB"},
		{name: "one terabyte", in: 1099511627776, want: "1.00 TB"},
		{name: "just below a unit boundary", in: 1023, want: "1023.00 B"},
		{name: "past the largest unit", in: 1125899906842624, want: "1024.00 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanBytes(tt.in))
		})
	}
}

func TestWriteCSV_Shape(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)
	require.NoError(t, w.Serialize(context.Background(), testRecord()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, records[0], 12)
	assert.Len(t, records[1], 12)
	assert.Equal(t, csvHeader, records[0])
}

func TestWriteCSV_Fields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)
	require.NoError(t, w.Serialize(context.Background(), testRecord()))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	row := records[1]

	assert.Equal(t, "2026-08-30T12:00:00.000000Z", row[0])
	assert.Equal(t, "node-1", row[1])
	assert.Equal(t, "node-1.fleet.example.com", row[2])
	assert.Equal(t, "linux", row[3])
	assert.Equal(t, "6.8.0-45-generic", row[4])
	assert.Equal(t, "8", row[5])
	assert.Equal(t, "16.00 GB", row[6])
	assert.Equal(t, "42.5", row[7])
	assert.Equal(t, "7261", row[8])
	assert.Equal(t, "1", row[9])
	assert.Equal(t, "2", row[10])
	assert.Equal(t, "lab,linux", row[11])
}

func TestWriteCSV_NaNUptimeCoercedToZero(t *testing.T) {
	rec := testRecord()
	rec.UptimeSeconds = inventory.Uptime(math.NaN())

	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)
	require.NoError(t, w.Serialize(context.Background(), rec))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "0", records[1][8])
}

func TestWriteCSV_EmptyTags(t *testing.T) {
	rec := testRecord()
	rec.Tags = []string{}

	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)
	require.NoError(t, w.Serialize(context.Background(), rec))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records[1], 12)
	assert.Equal(t, "", records[1][11])
}
