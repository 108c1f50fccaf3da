package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite},
			wantErr: nil,
		},
		{
			name:    "valid config with data dir",
			config:  Config{Backend: BackendSQLite, DataDir: "/tmp/stockroom"},
			wantErr: nil,
		},
		{
			name:    "valid in-memory config",
			config:  Config{Backend: BackendSQLite, InMemory: true},
			wantErr: nil,
		},
		{
			name:    "empty backend",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
