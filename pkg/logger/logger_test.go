package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelByEnv(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", &buf)
	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Info().Msg("shown")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "prod", line["env"])
	assert.Contains(t, line, "time")

	buf.Reset()
	dl := NewWithWriter("dev", &buf)
	dl.Debug().Msg("debug")
	assert.Contains(t, buf.String(), `"debug"`)
}
