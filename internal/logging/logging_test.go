package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    log.Level
	}{
		{name: "default is info", want: log.InfoLevel},
		{name: "verbose is debug", verbose: true, want: log.DebugLevel},
		{name: "quiet is error", quiet: true, want: log.ErrorLevel},
		{name: "quiet wins over verbose", verbose: true, quiet: true, want: log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.verbose, tt.quiet, false)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}

	t.Cleanup(func() { Setup(false, false, false) })
}

func TestNew_PrefixAppearsInOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, false)
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	logger := New("decoder")
	logger.Info("stream opened", "path", "session.jsonl")

	out := buf.String()
	assert.Contains(t, out, "decoder")
	assert.Contains(t, out, "stream opened")
	assert.Contains(t, out, "session.jsonl")
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, true)
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		Setup(false, false, false)
	})

	New("").Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
