//go:build integration

package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/require"
)

func newTestRasterizer(t *testing.T) *BrowserRasterizer {
	t.Helper()
	bin, ok := launcher.LookPath()
	if !ok {
		t.Skip("no Chromium found")
	}
	r := NewBrowserRasterizer(slog.Default(), bin)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestBrowserRasterizer_RendersPNG(t *testing.T) {
	r := newTestRasterizer(t)

	img, err := r.Rasterize(context.Background(), "<html><body>ok</body></html>", Viewport{Width: 80, Height: 60, Scale: 2})
	require.NoError(t, err)
	require.Greater(t, len(img), 8)
	require.Equal(t, "\x89PNG", string(img[:4]))
}

func TestBrowserRasterizer_TimeoutClosesPage(t *testing.T) {
	r := newTestRasterizer(t)

	// An image that never finishes loading keeps the page from reaching load.
	release := make(chan struct{})
	stall := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-release:
		case <-req.Context().Done():
		}
	}))
	t.Cleanup(stall.Close)
	t.Cleanup(func() { close(release) })

	// Warm up so the timeout below only covers the render.
	_, err := r.Rasterize(context.Background(), "<html></html>", Viewport{Width: 10, Height: 10, Scale: 1})
	require.NoError(t, err)
	before, err := r.browser.Pages()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	html := fmt.Sprintf(`<html><body><img src="%s/slow.png"></body></html>`, stall.URL)

	_, err = r.Rasterize(ctx, html, Viewport{Width: 80, Height: 60, Scale: 1})
	require.Error(t, err)

	after, err := r.browser.Pages()
	require.NoError(t, err)
	require.Len(t, after, len(before), "timed out render left a tab open")
}
