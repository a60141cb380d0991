// Package gate implements the time-limited password unlock guarding
// compliment mutations. It is a courtesy curtain for a shared device,
// not an authorization boundary.
package gate

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lyrebird-labs/keepsake/internal/clock"
	kperrors "github.com/lyrebird-labs/keepsake/internal/errors"
)

// DefaultUnlockWindow is how long a successful unlock lasts.
const DefaultUnlockWindow = 5 * time.Minute

// Gate holds the unlock state. All methods are safe for concurrent use.
type Gate struct {
	clock      clock.Clock
	secretHash []byte
	window     time.Duration

	mu       sync.Mutex
	unlocked bool
	until    time.Time
	timer    clock.Timer
}

// New builds a gate from a bcrypt hash of the shared secret. An empty
// hash leaves the gate permanently locked.
func New(c clock.Clock, secretHash string, window time.Duration) *Gate {
	if window <= 0 {
		window = DefaultUnlockWindow
	}
	return &Gate{
		clock:      c,
		secretHash: []byte(secretHash),
		window:     window,
	}
}

// Status reports the unlock state and, when unlocked, its expiry.
func (g *Gate) Status() (bool, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked, g.until
}

// SubmitPassword checks the candidate against the shared secret. A
// match opens the unlock window from this moment, replacing any pending
// re-lock timer. A mismatch leaves the state untouched.
func (g *Gate) SubmitPassword(candidate string) error {
	if len(g.secretHash) == 0 {
		return kperrors.Auth("gate secret is not configured")
	}
	if err := bcrypt.CompareHashAndPassword(g.secretHash, []byte(candidate)); err != nil {
		return kperrors.Auth("wrong password")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		g.timer.Stop()
	}
	g.unlocked = true
	g.until = g.clock.Now().Add(g.window)
	g.timer = g.clock.AfterFunc(g.window, g.relock)
	return nil
}

func (g *Gate) relock() {
	g.mu.Lock()
	defer g.mu.Unlock()
	// A replaced timer can still fire if it was already in flight when
	// the new unlock stopped it; ignore it while the window is open.
	if g.unlocked && g.clock.Now().Before(g.until) {
		return
	}
	g.unlocked = false
	g.until = time.Time{}
	g.timer = nil
}

// Guard runs fn only while unlocked; otherwise the action is redirected
// to the password prompt by an auth error.
func (g *Gate) Guard(fn func() error) error {
	g.mu.Lock()
	unlocked := g.unlocked
	g.mu.Unlock()
	if !unlocked {
		return kperrors.Auth("locked")
	}
	return fn()
}

// GuardWithToken is Guard with a second way in: a session token issued
// by IssueToken whose window has not closed yet. This lets an unlocked
// client survive a page reload without typing the password again.
func (g *Gate) GuardWithToken(token string, fn func() error) error {
	g.mu.Lock()
	unlocked := g.unlocked
	g.mu.Unlock()
	if !unlocked {
		if _, ok := g.VerifyToken(token); !ok {
			return kperrors.Auth("locked")
		}
	}
	return fn()
}

// IssueToken signs a session token whose expiry matches the current
// unlock window. Callers hand it back via GuardWithToken or VerifyToken.
func (g *Gate) IssueToken() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.unlocked {
		return "", kperrors.Auth("locked")
	}
	claims := jwt.RegisteredClaims{
		Subject:   "gate",
		IssuedAt:  jwt.NewNumericDate(g.clock.Now()),
		ExpiresAt: jwt.NewNumericDate(g.until),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secretHash)
}

// VerifyToken checks a session token and returns the expiry it carries.
// The signing key is the configured secret hash, so tokens stay valid
// across restarts as long as the secret does not change.
func (g *Gate) VerifyToken(token string) (time.Time, bool) {
	if len(g.secretHash) == 0 || token == "" {
		return time.Time{}, false
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return g.secretHash, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(g.clock.Now))
	if err != nil || !parsed.Valid {
		return time.Time{}, false
	}
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Reset locks the gate immediately, ending the session.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		g.timer.Stop()
	}
	g.unlocked = false
	g.until = time.Time{}
	g.timer = nil
}
