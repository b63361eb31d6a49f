package logger_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/maxviazov/offer-catalog-service/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName: "test-service",
				Env:         "prod",
				Level:       "info",
				TimeFormat:  "unix",
				Fields:      map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				Env:   "wrong-env",
				Level: "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid output target",
			config: &logpkg.LoggerConfig{
				Env:          "prod",
				OutputTarget: "syslog",
			},
			expectError: true,
		},
		{
			name: "staging on stderr",
			config: &logpkg.LoggerConfig{
				Env:          "staging",
				Level:        "warn",
				OutputTarget: "stderr",
				TimeFormat:   "rfc3339",
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "development without debug",
			config: &logpkg.LoggerConfig{
				Env:   "dev",
				Level: "info",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "development json",
			config: &logpkg.LoggerConfig{
				Env:    "dev",
				Level:  "error",
				Format: "json",
			},
			wantLevel: zerolog.ErrorLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := logpkg.New(test.config)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}

	t.Run("debug log file creation", func(t *testing.T) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			t.Fatal(wdErr)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })

		_, err := logpkg.New(&logpkg.LoggerConfig{Env: "dev", Level: "debug"})
		assert.NoError(t, err)

		_, statErr := os.Stat(logpkg.DebugLogPath)
		assert.NoError(t, statErr)
	})

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
}
