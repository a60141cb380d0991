package profile

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := &Profile{Data: t.TempDir()}
		require.NoError(t, p.Validate())
		assert.Equal(t, "demo", p.Mode)
		assert.Equal(t, "localfs", p.Driver)
		assert.Equal(t, 5*time.Minute, p.GateUnlockWindow)
	})

	t.Run("unknown mode falls back to demo", func(t *testing.T) {
		p := &Profile{Mode: "staging", Data: t.TempDir()}
		require.NoError(t, p.Validate())
		assert.Equal(t, "demo", p.Mode)
	})

	t.Run("unknown driver is rejected", func(t *testing.T) {
		p := &Profile{Driver: "mysql", Data: t.TempDir()}
		require.Error(t, p.Validate())
	})

	t.Run("sqlite gets a default DSN in the data dir", func(t *testing.T) {
		dir := t.TempDir()
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: dir}
		require.NoError(t, p.Validate())
		assert.Equal(t, filepath.Join(dir, "keepsake_dev.db"), p.DSN)
	})

	t.Run("postgres requires a DSN", func(t *testing.T) {
		p := &Profile{Driver: "postgres", Data: t.TempDir()}
		require.Error(t, p.Validate())
	})

	t.Run("remote requires a base URL", func(t *testing.T) {
		p := &Profile{Driver: "remote"}
		require.Error(t, p.Validate())

		p.RemoteBaseURL = "http://localhost:8081/api/v1"
		require.NoError(t, p.Validate())
	})

	t.Run("missing data dir is rejected", func(t *testing.T) {
		p := &Profile{Mode: "dev", Data: "/no/such/dir/for/keepsake"}
		require.Error(t, p.Validate())
	})
}

func TestIsDev(t *testing.T) {
	assert.True(t, (&Profile{Mode: "dev"}).IsDev())
	assert.True(t, (&Profile{Mode: "demo"}).IsDev())
	assert.False(t, (&Profile{Mode: "prod"}).IsDev())
}
