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
			name:   "memory backend",
			config: Config{Backend: BackendMemory},
		},
		{
			name:   "sqlite backend",
			config: Config{Backend: BackendSQLite, DataDir: ".stowr-db"},
		},
		{
			name:   "postgres backend with dsn",
			config: Config{Backend: BackendPostgres, DSN: "postgres://localhost/stowr"},
		},
		{
			name:    "empty backend rejected",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "etcd"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "postgres without dsn rejected",
			config:  Config{Backend: BackendPostgres},
			wantErr: ErrDSNRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
