package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-sim/enigma-go/pkg/preset"
	"github.com/enigma-sim/enigma-go/pkg/trace"
)

// writeTestTrace encodes a short text on a traced M3 and returns the
// trace file path and the machine's session ID.
func writeTestTrace(t *testing.T, text string) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.cbor")

	ft, err := trace.NewFileTracer(path)
	require.NoError(t, err)

	m, err := preset.NewBuilder("M3").
		Rotors("I", "II", "III").
		Positions("ADT").
		Tracer(ft).
		Build()
	require.NoError(t, err)

	_, err = m.Encode(text, false)
	require.NoError(t, err)
	require.NoError(t, ft.Close())

	return path, m.SessionID()
}

func TestRunTraceView(t *testing.T) {
	path, session := writeTestTrace(t, "HELLO")

	var buf bytes.Buffer
	require.NoError(t, runTraceView(&buf, path, trace.Filter{}))

	out := buf.String()
	assert.Contains(t, out, "KEYPRESS")
	assert.Contains(t, out, "CONFIG")
	assert.Contains(t, out, "H -> ")
	assert.Contains(t, out, shortenSessionID(session))
}

func TestRunTraceViewKindFilter(t *testing.T) {
	path, _ := writeTestTrace(t, "HELLO")

	kind := trace.KindKeypress
	var buf bytes.Buffer
	require.NoError(t, runTraceView(&buf, path, trace.Filter{Kind: &kind}))

	out := buf.String()
	assert.Contains(t, out, "5 events")
	assert.NotContains(t, out, "CONFIG")
}

func TestRunTraceViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runTraceView(&buf, filepath.Join(t.TempDir(), "absent.cbor"), trace.Filter{})
	assert.Error(t, err)
}

func TestTraceFilterFlag(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		want    *trace.Kind
		wantErr bool
	}{
		{name: "empty matches all", kind: ""},
		{name: "keypress", kind: "keypress", want: kindPtr(trace.KindKeypress)},
		{name: "config uppercase", kind: "CONFIG", want: kindPtr(trace.KindConfig)},
		{name: "unknown", kind: "frame", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traceKind = tt.kind
			defer func() { traceKind = "" }()

			filter, err := traceFilter()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter.Kind)
		})
	}
}

func kindPtr(k trace.Kind) *trace.Kind { return &k }

func TestRunTraceStats(t *testing.T) {
	path, session := writeTestTrace(t, "HELLOWORLD")

	var buf bytes.Buffer
	require.NoError(t, runTraceStats(&buf, path))

	out := buf.String()
	assert.Contains(t, out, "KEYPRESS 10")
	assert.Contains(t, out, "Rotor steps:")
	// The fast rotor steps once per keypress.
	assert.Contains(t, out, "III     10")
	assert.Contains(t, out, shortenSessionID(session))
	assert.Contains(t, out, "10 keypresses")
}

func TestRunTraceStatsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.cbor")
	ft, err := trace.NewFileTracer(path)
	require.NoError(t, err)
	require.NoError(t, ft.Close())

	var buf bytes.Buffer
	require.NoError(t, runTraceStats(&buf, path))
	assert.Contains(t, buf.String(), "Total events: 0")
}
