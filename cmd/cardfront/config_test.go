package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_LogOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     appConfig
		want    int
		wantErr string
	}{
		{"no overrides", appConfig{}, 0, ""},
		{"level only", appConfig{LogLevel: "warn"}, 1, ""},
		{"level and format", appConfig{LogLevel: "DEBUG", LogFormat: "Text"}, 2, ""},
		{"bad level", appConfig{LogLevel: "loud"}, 0, "LOG_LEVEL"},
		{"bad format", appConfig{LogFormat: "xml"}, 0, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts, err := tt.cfg.logOptions()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.want)
		})
	}
}
