package rss

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrebird-labs/keepsake/internal/profile"
	"github.com/lyrebird-labs/keepsake/store"
	"github.com/lyrebird-labs/keepsake/store/db/localfs"
)

func TestGetExploreRSS(t *testing.T) {
	p := &profile.Profile{Mode: "dev", Data: t.TempDir(), Driver: "localfs", Addr: "localhost", Port: 8081}
	driver, err := localfs.NewDB(p)
	require.NoError(t, err)
	st := store.New(driver, p)
	t.Cleanup(func() { st.Close() })

	e := echo.New()
	NewRSSService(p, st).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/explore/rss.xml", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/rss+xml")

	body := rec.Body.String()
	assert.Contains(t, body, "<rss")
	// Seeded note content is rendered to HTML.
	assert.Contains(t, body, "You make my heart smile every day.")
	// Seeded timeline milestones appear as items.
	assert.Contains(t, body, "First Date")
	assert.Contains(t, body, "First Kiss")
}
