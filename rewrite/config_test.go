package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected Config
		wantErr  bool
	}{
		{
			name: "full file",
			content: `name: shop
source: src/main/java
output: build/rewritten
units:
  - com/shop/Cart.java
  - com/shop/Order.java
`,
			expected: Config{
				Name:   "shop",
				Source: "src/main/java",
				Output: "build/rewritten",
				Units:  []string{"com/shop/Cart.java", "com/shop/Order.java"},
			},
		},
		{
			name:     "partial file keeps defaults",
			content:  "output: out\n",
			expected: Config{Name: "idxloop", Source: ".", Output: "out"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: DefaultConfig(),
		},
		{
			name:    "unknown field",
			content: "rules: {}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			config, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigPath)
	config := DefaultConfig()
	config.Units = []string{"A.java"}
	require.NoError(t, WriteConfig(path, config))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Output: "out"}.Validate())
	assert.Error(t, Config{Source: "."}.Validate())
}
