package htxt

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-htxt/internal/fileutil"
	"github.com/alnah/go-htxt/internal/process"
)

// pdfConverter turns a rendered HTML document into PDF bytes.
type pdfConverter interface {
	ToPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// pdfRenderer prints a local HTML file; split out so tests need no browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, path string) ([]byte, error)
	Close() error
}

// US Letter with half-inch margins.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// rodRenderer drives headless Chrome through go-rod. The browser is
// launched on first use; rod downloads Chromium when none is installed.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") != "" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return nil
}

// Close shuts the browser down and kills anything it left behind.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.kill()
	return err
}

func (r *rodRenderer) kill() {
	if r.launcher == nil {
		return
	}
	if pid := r.launcher.PID(); pid > 0 {
		_ = process.KillTree(pid)
	}
	r.launcher.Kill()
	r.launcher = nil
}

// RenderFromFile opens path in a new tab and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter writes the HTML to a temp file and prints it.
type rodConverter struct {
	renderer pdfRenderer
}

func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{renderer: newRodRenderer(timeout)}
}

func (c *rodConverter) ToPDF(ctx context.Context, html string) ([]byte, error) {
	path, cleanup, err := fileutil.WriteTempFile(html, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, path)
}

func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
