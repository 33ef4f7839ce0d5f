package membercrm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"MEMBERCRM_INSTANCE_URL",
	"MEMBERCRM_ACCESS_TOKEN",
	"MEMBERCRM_PAGE_SIZE",
	"MEMBERCRM_USER_AGENT",
	"MEMBERCRM_TIMEOUT",
}

// clearConfigEnv unsets every config variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MEMBERCRM_INSTANCE_URL", "https://example.my.salesforce.com")
	t.Setenv("MEMBERCRM_ACCESS_TOKEN", "00Dxx!token")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.my.salesforce.com", cfg.InstanceURL)
	assert.Equal(t, "00Dxx!token", cfg.AccessToken)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.UserAgent)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MEMBERCRM_INSTANCE_URL", "https://example.my.salesforce.com")
	t.Setenv("MEMBERCRM_ACCESS_TOKEN", "token")
	t.Setenv("MEMBERCRM_PAGE_SIZE", "50")
	t.Setenv("MEMBERCRM_TIMEOUT", "5s")
	t.Setenv("MEMBERCRM_USER_AGENT", "pastoral-dashboard/2.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "pastoral-dashboard/2.1", cfg.UserAgent)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing instance url",
			env:     map[string]string{"MEMBERCRM_ACCESS_TOKEN": "token"},
			wantErr: "MEMBERCRM_INSTANCE_URL",
		},
		{
			name: "blank access token",
			env: map[string]string{
				"MEMBERCRM_INSTANCE_URL": "https://example.my.salesforce.com",
				"MEMBERCRM_ACCESS_TOKEN": "",
			},
			wantErr: "MEMBERCRM_ACCESS_TOKEN",
		},
		{
			name:    "missing access token",
			env:     map[string]string{"MEMBERCRM_INSTANCE_URL": "https://example.my.salesforce.com"},
			wantErr: "MEMBERCRM_ACCESS_TOKEN",
		},
		{
			name: "negative page size",
			env: map[string]string{
				"MEMBERCRM_INSTANCE_URL": "https://example.my.salesforce.com",
				"MEMBERCRM_ACCESS_TOKEN": "token",
				"MEMBERCRM_PAGE_SIZE":    "-5",
			},
			wantErr: "must not be negative",
		},
		{
			name: "malformed timeout",
			env: map[string]string{
				"MEMBERCRM_INSTANCE_URL": "https://example.my.salesforce.com",
				"MEMBERCRM_ACCESS_TOKEN": "token",
				"MEMBERCRM_TIMEOUT":      "soon",
			},
			wantErr: "parse env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewClientFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MEMBERCRM_INSTANCE_URL", "https://example.my.salesforce.com")
	t.Setenv("MEMBERCRM_ACCESS_TOKEN", "token")
	t.Setenv("MEMBERCRM_PAGE_SIZE", "75")
	t.Setenv("MEMBERCRM_USER_AGENT", "pastoral-dashboard/2.1")

	c, err := NewClientFromEnv(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://example.my.salesforce.com/"+DefaultAPIPath, c.Address.String())
	assert.Equal(t, "token", c.BearerToken)
	assert.Equal(t, 75, c.DefaultPageSize)
	assert.Equal(t, "pastoral-dashboard/2.1", c.UserAgent)
	assert.Equal(t, 30*time.Second, c.client.Timeout)

	c, err = NewClientFromEnv(context.Background(), WithDefaultPageSize(10))
	require.NoError(t, err)
	assert.Equal(t, 10, c.DefaultPageSize)
}

func TestNewClientFromEnv_MissingConfig(t *testing.T) {
	clearConfigEnv(t)

	_, err := NewClientFromEnv(context.Background())
	require.Error(t, err)
}
