package dirwalk

import (
	"errors"
	"fmt"

	"github.com/gobwas/glob"
)

// ErrBadPattern is returned by NameFilter for a pattern that does not compile.
var ErrBadPattern = errors.New("dirwalk: bad name pattern")

// NameFilter compiles glob patterns (for example "*.txt" or "{a,b}*") into
// a Filter that keeps every directory and every file whose base name
// matches at least one pattern. With no patterns it keeps everything.
func NameFilter(patterns ...string) (func(e Entry) bool, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	var (
		g   glob.Glob
		err error
	)
	for _, p := range patterns {
		if g, err = glob.Compile(p); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, p, err)
		}
		globs = append(globs, g)
	}

	return func(e Entry) bool {
		if e.Dir || len(globs) == 0 {
			return true
		}
		for _, g := range globs {
			if g.Match(e.Name) {
				return true
			}
		}

		return false
	}, nil
}
