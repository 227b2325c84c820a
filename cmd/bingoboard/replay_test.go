package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

const sessionScript = `events:
  - type: card_select
    card: 3
  - type: cell_click
    cell: B2
  - type: cell_click
    cell: A1
  - type: toggle_theme
`

func TestReplayCommand_TextOutput(t *testing.T) {
	path := writeFile(t, "session.yaml", sessionScript)

	stdout, _, err := executeRoot(t, "replay", path)
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "X", ".", ".", ".", "."}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", ".", "#3", ".", ".", "."}, strings.Fields(lines[2]))
	assert.Contains(t, stdout, "theme: dark")
	assert.NotContains(t, stdout, "selected:")
}

func TestReplayCommand_ShowsPendingSelection(t *testing.T) {
	path := writeFile(t, "select.yaml", "events:\n  - type: card_select\n    card: 7\n")

	stdout, _, err := executeRoot(t, "replay", path, "--rows", "2", "--cols", "2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "selected: #7")
	assert.Contains(t, stdout, "theme: light")
}

func TestReplayCommand_JSONOutput(t *testing.T) {
	path := writeFile(t, "session.yaml", sessionScript)

	stdout, _, err := executeRoot(t, "replay", path, "--output", "json")
	require.NoError(t, err)

	var snap board.Snapshot
	require.NoError(t, json.Unmarshal([]byte(stdout), &snap))
	assert.Equal(t, 5, snap.Rows)
	assert.Equal(t, 5, snap.Cols)
	assert.Equal(t, "dark", snap.Theme)
	assert.Len(t, snap.Cells, 25)
	assert.Equal(t, "crossed", snap.Cells["A1"])
	assert.Equal(t, "occupied", snap.Cells["B2"])
	assert.Equal(t, "img/image (3).jpg", snap.Cards["B2"])
}

func TestReplayCommand_YAMLOutput(t *testing.T) {
	path := writeFile(t, "session.yaml", sessionScript)

	stdout, _, err := executeRoot(t, "replay", path, "-o", "yaml")
	require.NoError(t, err)

	var snap board.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &snap))
	assert.Equal(t, "dark", snap.Theme)
	assert.Equal(t, "img/image (3).jpg", snap.Cards["B2"])
}

func TestReplayCommand_ApplyResizesBoard(t *testing.T) {
	path := writeFile(t, "apply.yaml", `events:
  - type: cell_click
    cell: A1
  - type: apply
    rows: 2
    cols: 3
`)

	stdout, _, err := executeRoot(t, "replay", path, "-o", "json")
	require.NoError(t, err)

	var snap board.Snapshot
	require.NoError(t, json.Unmarshal([]byte(stdout), &snap))
	assert.Equal(t, 2, snap.Rows)
	assert.Equal(t, 3, snap.Cols)
	assert.Len(t, snap.Cells, 6)
	assert.Equal(t, "empty", snap.Cells["A1"])
}

func TestReplayCommand_Errors(t *testing.T) {
	valid := writeFile(t, "session.yaml", sessionScript)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing argument", args: []string{"replay"}, want: "accepts 1 arg"},
		{name: "unknown format", args: []string{"replay", valid, "-o", "xml"}, want: "unknown output format"},
		{name: "missing file", args: []string{"replay", "does-not-exist.yaml"}, want: "does-not-exist.yaml"},
		{
			name: "card outside tray",
			args: []string{"replay", writeFile(t, "bad.yaml", "events:\n  - type: card_select\n    card: 12\n")},
			want: "events[0]",
		},
		{
			name: "unknown event type",
			args: []string{"replay", writeFile(t, "type.yaml", "events:\n  - type: shuffle\n")},
			want: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
