package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at tempDir and returns a restore func.
func isolate(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	originalGetDotEnvPath := getDotEnvPath
	originalLookupEnv := osLookupEnv
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
		getDotEnvPath = originalGetDotEnvPath
		osLookupEnv = originalLookupEnv
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "user", configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", configFileName), nil
	}
	getDotEnvPath = func() (string, error) {
		return filepath.Join(tempDir, dotEnvFileName), nil
	}
	osLookupEnv = func(string) (string, bool) { return "", false }
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.False(t, loaded.Auth.ServerLogout, "logout stays client-side by default")
}

func TestLoadConfig_UserAndProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	writeFile(t, filepath.Join(tempDir, "user", configFileName), `
api:
  baseURL: http://user.example:9000/api
  timeout: 30s
ui:
  dateFormat: "02 Jan 15:04"
`)
	writeFile(t, filepath.Join(tempDir, "project", configFileName), `
api:
  baseURL: http://project.example/api
auth:
  serverLogout: true
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://project.example/api", loaded.API.BaseURL, "project layer wins")
	assert.Equal(t, 30*time.Second, loaded.API.Timeout, "user layer kept where project is silent")
	assert.Equal(t, "02 Jan 15:04", loaded.UI.DateFormat)
	assert.True(t, loaded.Auth.ServerLogout)
	assert.Equal(t, DefaultLogoutPath, loaded.Auth.LogoutPath)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)
	writeFile(t, filepath.Join(tempDir, "user", configFileName), "api: [unterminated")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_DotEnvAndEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)
	writeFile(t, filepath.Join(tempDir, dotEnvFileName), "STATUSBOARD_API_URL=http://dotenv.example/api\nSTATUSBOARD_TIMEOUT=5s\n")

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.example/api", loaded.API.BaseURL)
	assert.Equal(t, 5*time.Second, loaded.API.Timeout)

	osLookupEnv = func(key string) (string, bool) {
		if key == EnvAPIURL {
			return "http://process.example/api", true
		}
		return "", false
	}
	loaded, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://process.example/api", loaded.API.BaseURL, "process env beats .env")
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	isolate(t, t.TempDir())
	osLookupEnv = func(key string) (string, bool) {
		if key == EnvTimeout {
			return "soon", true
		}
		return "", false
	}

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
}

func TestMergeConfigs_ZeroOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig()
	merged := mergeConfigs(base, StatusboardConfig{})
	assert.Equal(t, base, merged)
}

func TestStatusMessageDuration(t *testing.T) {
	assert.Equal(t, 4*time.Second, UIConfig{}.StatusMessageDuration())
	assert.Equal(t, 9*time.Second, UIConfig{StatusMessageSeconds: 9}.StatusMessageDuration())
}

func TestLoadConfigFromPath(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	writeFile(t, filepath.Join(tempDir, "user", configFileName), `
api:
  baseURL: http://ignored.example/api
`)
	explicit := filepath.Join(tempDir, "explicit.yaml")
	writeFile(t, explicit, `
auth:
  serverLogout: true
`)

	loaded, err := LoadConfigFromPath(explicit)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig().API.BaseURL, loaded.API.BaseURL)
	assert.True(t, loaded.Auth.ServerLogout)

	_, err = LoadConfigFromPath(filepath.Join(tempDir, "missing.yaml"))
	require.Error(t, err)
}
