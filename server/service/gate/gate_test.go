package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lyrebird-labs/keepsake/internal/clock"
	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
)

func newTestGate(t *testing.T, secret string, window time.Duration) (*Gate, *clock.Manual) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(manual, string(hash), window), manual
}

func TestGate(t *testing.T) {
	t.Run("correct password unlocks", func(t *testing.T) {
		g, manual := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		unlocked, until := g.Status()
		assert.True(t, unlocked)
		assert.Equal(t, manual.Now().Add(5*time.Minute), until)
	})

	t.Run("wrong password leaves gate locked", func(t *testing.T) {
		g, _ := newTestGate(t, "sunflower", 5*time.Minute)

		err := g.SubmitPassword("tulip")
		require.Error(t, err)
		assert.True(t, kperrors.Is(err, kperrors.CodeAuth))
		unlocked, _ := g.Status()
		assert.False(t, unlocked)
	})

	t.Run("wrong password does not extend an open window", func(t *testing.T) {
		g, _ := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		_, before := g.Status()
		require.Error(t, g.SubmitPassword("tulip"))
		_, after := g.Status()
		assert.Equal(t, before, after)
	})

	t.Run("relocks when the window elapses", func(t *testing.T) {
		g, manual := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		manual.Advance(5 * time.Minute)
		unlocked, _ := g.Status()
		assert.False(t, unlocked)
	})

	t.Run("re-unlock replaces the pending timer", func(t *testing.T) {
		g, manual := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		manual.Advance(4 * time.Minute)
		require.NoError(t, g.SubmitPassword("sunflower"))

		// The first window would have expired here; the second keeps
		// the gate open.
		manual.Advance(2 * time.Minute)
		unlocked, _ := g.Status()
		assert.True(t, unlocked)

		manual.Advance(3 * time.Minute)
		unlocked, _ = g.Status()
		assert.False(t, unlocked)
	})

	t.Run("guard intercepts while locked", func(t *testing.T) {
		g, _ := newTestGate(t, "sunflower", 5*time.Minute)

		ran := false
		err := g.Guard(func() error { ran = true; return nil })
		require.Error(t, err)
		assert.True(t, kperrors.Is(err, kperrors.CodeAuth))
		assert.False(t, ran)

		require.NoError(t, g.SubmitPassword("sunflower"))
		require.NoError(t, g.Guard(func() error { ran = true; return nil }))
		assert.True(t, ran)
	})

	t.Run("reset locks immediately", func(t *testing.T) {
		g, _ := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		g.Reset()
		unlocked, _ := g.Status()
		assert.False(t, unlocked)
	})

	t.Run("unconfigured secret never unlocks", func(t *testing.T) {
		manual := clock.NewManual(time.Unix(0, 0))
		g := New(manual, "", time.Minute)
		err := g.SubmitPassword("anything")
		require.Error(t, err)
		assert.True(t, kperrors.Is(err, kperrors.CodeAuth))
	})
}

func TestGateSessionToken(t *testing.T) {
	t.Run("token expiry matches the unlock window", func(t *testing.T) {
		g, manual := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		token, err := g.IssueToken()
		require.NoError(t, err)

		exp, ok := g.VerifyToken(token)
		require.True(t, ok)
		assert.Equal(t, manual.Now().Add(5*time.Minute).Unix(), exp.Unix())
	})

	t.Run("locked gate refuses to issue", func(t *testing.T) {
		g, _ := newTestGate(t, "sunflower", 5*time.Minute)

		_, err := g.IssueToken()
		require.Error(t, err)
		assert.True(t, kperrors.Is(err, kperrors.CodeAuth))
	})

	t.Run("token survives a fresh gate with the same secret", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("sunflower"), bcrypt.MinCost)
		require.NoError(t, err)
		manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		first := New(manual, string(hash), 5*time.Minute)
		require.NoError(t, first.SubmitPassword("sunflower"))
		token, err := first.IssueToken()
		require.NoError(t, err)

		// A restarted process builds a new gate; the token is the only
		// proof of the earlier unlock and must still be honored.
		second := New(manual, string(hash), 5*time.Minute)
		ran := false
		require.NoError(t, second.GuardWithToken(token, func() error { ran = true; return nil }))
		assert.True(t, ran)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		g, manual := newTestGate(t, "sunflower", 5*time.Minute)

		require.NoError(t, g.SubmitPassword("sunflower"))
		token, err := g.IssueToken()
		require.NoError(t, err)

		manual.Advance(6 * time.Minute)
		_, ok := g.VerifyToken(token)
		assert.False(t, ok)
		err = g.GuardWithToken(token, func() error { return nil })
		require.Error(t, err)
		assert.True(t, kperrors.Is(err, kperrors.CodeAuth))
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		g, _ := newTestGate(t, "sunflower", 5*time.Minute)

		_, ok := g.VerifyToken("not.a.token")
		assert.False(t, ok)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		first, _ := newTestGate(t, "sunflower", 5*time.Minute)
		second, _ := newTestGate(t, "tulip", 5*time.Minute)

		require.NoError(t, first.SubmitPassword("sunflower"))
		token, err := first.IssueToken()
		require.NoError(t, err)

		_, ok := second.VerifyToken(token)
		assert.False(t, ok)
	})
}
