package chrome

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"

	"github.com/goliatone/go-framegen/pkg/template"
)

// Surface is the owned rendering resource behind the renderer: one headless
// browser session, created lazily at a fixed size and reused until closed.
type Surface interface {
	// Screenshot rasterizes the page at pageURL into PNG bytes at the
	// surface's size.
	Screenshot(ctx context.Context, pageURL string) ([]byte, error)
	Close() error
}

// session is the chromedp-backed Surface. The browser context derives from
// context.Background on purpose: a caller abandoning a render leaves the
// rasterization running to completion rather than tearing the session down.
type session struct {
	size   template.Size
	logger *slog.Logger

	browserCtx  context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// newSession starts a headless browser sized to the frame dimensions with the
// stability flags the original rendering stack depends on.
func newSession(ctx context.Context, size template.Size, locator Locator, extraFlags map[string]any, logger *slog.Logger) (*session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(size.Width, size.Height),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-software-rasterizer", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.Flag("default-background-color", "00000000"),
	)
	for name, value := range extraFlags {
		opts = append(opts, chromedp.Flag(name, value))
	}

	if locator != nil {
		if path, ok := locator.Executable(ctx); ok {
			logger.Debug("using discovered browser executable", "path", path)
			opts = append(opts, chromedp.ExecPath(path))
		}
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)

	s := &session{
		size:        size,
		logger:      logger,
		browserCtx:  browserCtx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
	}

	// Start the browser eagerly so sizing problems surface at creation, not
	// on the first frame.
	if err := chromedp.Run(browserCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("chrome: start session: %w", err)
	}

	logger.Debug("rendering session started", "size", size.String())
	return s, nil
}

func (s *session) Screenshot(_ context.Context, pageURL string) ([]byte, error) {
	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(s.size.Width), int64(s.size.Height)),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&buf),
	}
	if err := chromedp.Run(s.browserCtx, tasks); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *session) Close() error {
	if s.cancelCtx != nil {
		s.cancelCtx()
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
	}
	return nil
}

// pageFileURL writes markup to a scratch .html file and returns its file://
// URL plus a cleanup func. Navigating a real file keeps relative and file://
// subresources loadable, matching how the original surface worked.
func pageFileURL(html string) (string, func(), error) {
	f, err := os.CreateTemp("", "frame_*.html")
	if err != nil {
		return "", nil, fmt.Errorf("chrome: scratch page: %w", err)
	}
	name := f.Name()
	cleanup := func() {
		_ = os.Remove(name)
	}

	if _, err := f.WriteString(html); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("chrome: write scratch page: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("chrome: close scratch page: %w", err)
	}

	uri := url.URL{Scheme: "file", Path: filepath.ToSlash(name)}
	return uri.String(), cleanup, nil
}
