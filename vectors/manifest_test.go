package vectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
vectors:
  - name: BATT_LEVEL
    opcode: DIRECT_GET_BATT_LVL
  - name: BRICK_NAME
    opcode: SYSTEM_SETBRICKNAME
    fields:
      - type: string
        max_len: 15
        value: test
  - name: PLAY_TONE
    opcode: DIRECT_PLAY_TONE
    fields:
      - type: uint
        width: 2
        uint: 440
      - type: uint
        width: 2
        uint: 1000
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Vectors, 3)

	vs, err := m.Build()
	require.NoError(t, err)
	require.Len(t, vs, 3)

	assert.Equal(t, []byte{0, 11}, vs[0].Data)
	assert.Equal(t, []byte{1, 152, 116, 101, 115, 116, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, vs[1].Data)
	assert.Equal(t, []byte{0, 3, 184, 1, 232, 3}, vs[2].Data)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			"no vectors",
			`vectors: []`,
			"no vectors",
		},
		{
			"empty name",
			"vectors:\n  - opcode: DIRECT_KEEP_ALIVE\n",
			"empty name",
		},
		{
			"duplicate name",
			"vectors:\n  - name: A\n    opcode: DIRECT_KEEP_ALIVE\n  - name: A\n    opcode: DIRECT_KEEP_ALIVE\n",
			"duplicate",
		},
		{
			"unknown opcode",
			"vectors:\n  - name: A\n    opcode: NOT_A_COMMAND\n",
			"unknown opcode",
		},
		{
			"bad field type",
			"vectors:\n  - name: A\n    opcode: DIRECT_KEEP_ALIVE\n    fields:\n      - type: float\n",
			"unknown type",
		},
		{
			"bad width",
			"vectors:\n  - name: A\n    opcode: DIRECT_KEEP_ALIVE\n    fields:\n      - type: uint\n        width: 3\n",
			"width",
		},
		{
			"byte out of range",
			"vectors:\n  - name: A\n    opcode: DIRECT_KEEP_ALIVE\n    fields:\n      - type: bytes\n        bytes: [0, 256]\n",
			"out of range",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tc.manifest))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestBuildValueOutOfRange(t *testing.T) {
	manifest := "vectors:\n  - name: A\n    opcode: DIRECT_KEEP_ALIVE\n    fields:\n      - type: uint\n        width: 1\n        uint: 300\n"
	m, err := Load(writeManifest(t, manifest))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit")
}

func TestBuildFieldKinds(t *testing.T) {
	manifest := `
vectors:
  - name: MIXED
    opcode: DIRECT_MESSAGE_WRITE
    fields:
      - type: uint
        width: 1
        uint: 1
      - type: bool
        bool: true
      - type: int
        width: 2
        int: -2
      - type: bytes
        bytes: [170, 187]
  - name: WITH_FILE
    opcode: SYSTEM_DELETE
    fields:
      - type: filename
        value: old.log
`
	m, err := Load(writeManifest(t, manifest))
	require.NoError(t, err)

	vs, err := m.Build()
	require.NoError(t, err)
	require.Len(t, vs, 2)

	assert.Equal(t, []byte{0x00, 0x09, 0x01, 0x01, 0xFE, 0xFF, 0xAA, 0xBB}, vs[0].Data)

	want := append([]byte{0x01, 0x85}, []byte("old.log")...)
	want = append(want, make([]byte, 13)...)
	assert.Equal(t, want, vs[1].Data)
}
