package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/idea-kanban/internal/config"
)

func TestApplicationLogOutput(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tests := []struct {
		env       string
		wantLevel zerolog.Level
		console   bool
	}{
		{env: config.EnvDev, wantLevel: zerolog.DebugLevel},
		{env: config.EnvProd, wantLevel: zerolog.InfoLevel},
		{env: config.EnvLocal, wantLevel: zerolog.TraceLevel, console: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			w, err := applicationLogOutput(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, isConsole := w.(zerolog.ConsoleWriter)
			assert.Equal(t, tt.console, isConsole)
		})
	}

	_, err := applicationLogOutput("staging")
	assert.EqualError(t, err, "unknown env: staging")
}
