package certificate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Viewport is the CSS size and pixel density of a raster.
type Viewport struct {
	Width  int
	Height int
	Scale  float64
}

// pageCloseTimeout bounds closing a tab once the render itself is over.
const pageCloseTimeout = 5 * time.Second

// Rasterizer turns an HTML document into a PNG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, vp Viewport) ([]byte, error)
}

// BrowserRasterizer screenshots HTML in a headless Chromium. The browser
// is launched on first use and shared by all renders; each render gets its
// own page.
type BrowserRasterizer struct {
	log *slog.Logger
	bin string

	mu      sync.Mutex
	browser *rod.Browser
	launch  *launcher.Launcher
}

// NewBrowserRasterizer creates a rasterizer. An empty bin lets rod locate
// or download a browser.
func NewBrowserRasterizer(logger *slog.Logger, bin string) *BrowserRasterizer {
	return &BrowserRasterizer{
		log: logger.With("component", "rasterizer"),
		bin: bin,
	}
}

func (r *BrowserRasterizer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(true).NoSandbox(true)
	if r.bin != "" {
		l = l.Bin(r.bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	r.log.Info("headless browser started", slog.String("control_url", controlURL))
	r.browser = browser
	r.launch = l
	return browser, nil
}

// Rasterize loads html into a fresh page sized to vp and captures a PNG.
func (r *BrowserRasterizer) Rasterize(ctx context.Context, html string, vp Viewport) ([]byte, error) {
	browser, err := r.connect()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The tab lives on the browser context; only the render steps observe ctx.
	tab, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer r.closePage(tab)

	page := tab.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: vp.Scale,
	}); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	img, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			Width:  float64(vp.Width),
			Height: float64(vp.Height),
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return img, nil
}

func (r *BrowserRasterizer) closePage(tab *rod.Page) {
	closeCtx, cancel := context.WithTimeout(context.Background(), pageCloseTimeout)
	defer cancel()

	if err := tab.Context(closeCtx).Close(); err != nil {
		r.log.Warn("close page",
			slog.String("target_id", string(tab.TargetID)),
			slog.String("error", err.Error()),
		)
	}
}

// Close shuts the browser down if it was started.
func (r *BrowserRasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.launch.Kill()
	r.browser = nil
	r.launch = nil
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("close browser: %w", err)
	}
	return nil
}
