package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func init() {
	DisableColors()
}

func TestOutput_Check(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)

	assert.True(t, out.Check("Testing rsync", true))
	assert.False(t, out.Check("Testing mysqldump", false))

	assert.Equal(t, "Testing rsync OK\nTesting mysqldump ⚠ Error\n", buf.String())
}

func TestOutput_Blocks(t *testing.T) {
	tests := []struct {
		name   string
		write  func(o *Output)
		expect string
	}{
		{name: "error", write: func(o *Output) { o.ErrorBlock("App not found") }, expect: "✗ App not found"},
		{name: "note", write: func(o *Output) { o.NoteBlock("Abort") }, expect: "! Abort"},
		{name: "info", write: func(o *Output) { o.InfoBlock("Deploying") }, expect: "ℹ Deploying"},
		{name: "success", write: func(o *Output) { o.SuccessBlock("Done") }, expect: "✓ Done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewOutput(&buf))
			assert.Contains(t, buf.String(), tt.expect)
		})
	}
}

func TestOutput_CommandAndPassthrough(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)

	out.Command("frcopy db up")
	out.Passthrough("line one\nline two\n")
	out.Passthrough("")

	assert.Equal(t, "$ frcopy db up\n  line one\n  line two\n", buf.String())
}

func TestStylesAreFunctional(t *testing.T) {
	for _, style := range []func() string{
		func() string { return SuccessStyle().Render("x") },
		func() string { return ErrorStyle().Render("x") },
		func() string { return WarningStyle().Render("x") },
		func() string { return InfoStyle().Render("x") },
		func() string { return MutedStyle().Render("x") },
	} {
		assert.Contains(t, style(), "x")
	}
}
