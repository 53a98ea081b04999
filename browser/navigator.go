// Package browser provides a homeseek.Navigator that opens static result
// pages in the system browser.
package browser

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/mwidmann/homeseek"
)

// Ensure Navigator implements homeseek.Navigator at compile time.
var _ homeseek.Navigator = (*Navigator)(nil)

// URLResolver turns a static page path into an absolute URL.
type URLResolver interface {
	PageURL(path string) string
}

// Navigator opens static pages in the default system browser.
type Navigator struct {
	resolver URLResolver

	// run executes the launcher command; replaced in tests.
	run func(ctx context.Context, name string, args ...string) error
}

// NewNavigator creates a Navigator that resolves page paths with resolver.
func NewNavigator(resolver URLResolver) *Navigator {
	return &Navigator{
		resolver: resolver,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Start()
		},
	}
}

// OpenPage opens the static page at path in a new browser window or tab.
func (n *Navigator) OpenPage(ctx context.Context, path string) error {
	url := n.resolver.PageURL(path)

	name, args := launcher(runtime.GOOS, url)
	if err := n.run(ctx, name, args...); err != nil {
		return homeseek.Errorf(homeseek.EINTERNAL, "failed to open %s in the browser", url)
	}
	return nil
}

// launcher returns the platform command that opens a URL.
func launcher(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
