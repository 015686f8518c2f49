package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*TerminalPrompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewTerminalPrompter(strings.NewReader(input), out), out
}

func TestText_TrimsNewline(t *testing.T) {
	p, out := newPrompter("alice\n")
	got, err := p.Text("Username")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Contains(t, out.String(), "Username\n> ")
}

func TestText_PartialLineAtEOF(t *testing.T) {
	p, _ := newPrompter("alice")
	got, err := p.Text("Username")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestTextDefault(t *testing.T) {
	p, out := newPrompter("\n")
	got, err := p.TextDefault("Key name", "bytestashy")
	require.NoError(t, err)
	assert.Equal(t, "bytestashy", got)
	assert.Contains(t, out.String(), "[bytestashy]")

	p, _ = newPrompter("custom\n")
	got, err = p.TextDefault("Key name", "bytestashy")
	require.NoError(t, err)
	assert.Equal(t, "custom", got)
}

func TestPassword_UsesSeamAndDoesNotEcho(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	p, out := newPrompter("")
	got, err := p.Password("Password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.NotContains(t, out.String(), "s3cret")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"Y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", false, false},
		{"\n", true, true},
		{"whatever\n", true, false},
	}
	for _, tc := range tests {
		p, _ := newPrompter(tc.input)
		got, err := p.Confirm("Sure?", tc.def)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q default %v", tc.input, tc.def)
	}
}
