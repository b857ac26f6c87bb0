package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {
			"token_sign_key": "key",
			"token_issuer": "iss",
			"token_duration": "45m",
			"hashid_salt": "salt",
			"hashid_alphabet": "0123456789abcdef",
			"hashid_min_length": 4,
			"version": "0.1.0"
		},
		"storage": {"db": {"dsn": "sqlite://x.db", "max_open_conns": 3, "acquire_timeout": "500ms"}},
		"server": {"http_address": "localhost:1", "grpc_address": "localhost:2", "request_timeout": "5s", "log_file": "x.log"},
		"workers": {"executors": 1, "mailbox_capacity": 2, "ask_timeout": 1000000000}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "salt", cfg.App.HashIDSalt)
	assert.Equal(t, "0123456789abcdef", cfg.App.HashIDAlphabet)
	assert.Equal(t, 4, cfg.App.HashIDMinLength)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, "sqlite://x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 500*time.Millisecond, cfg.Storage.DB.AcquireTimeout)
	assert.Equal(t, "localhost:1", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:2", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "x.log", cfg.Server.LogFile)
	assert.Equal(t, 1, cfg.Workers.Executors)
	assert.Equal(t, 2, cfg.Workers.MailboxCapacity)
	assert.Equal(t, time.Second, cfg.Workers.AskTimeout)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "number", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}
