package homeseek

import "context"

// Navigator opens a backend-generated static result page. Implementations
// may open the system browser or replay the page inside the terminal.
type Navigator interface {
	// OpenPage opens the static page at the given path. This is a pure
	// navigation side effect: no search state is touched and no search
	// call is made.
	OpenPage(ctx context.Context, path string) error
}
