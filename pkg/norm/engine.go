package norm

import (
	"sync"

	"github.com/TryMightyAI/unorm/pkg/unicodedata"
)

// Engine binds the normalization algorithms to a character database.
// An Engine is stateless: every method allocates its own output and is
// safe for concurrent use.
type Engine struct {
	db unicodedata.Accessor
}

// NewEngine returns an Engine reading from db.
func NewEngine(db unicodedata.Accessor) *Engine {
	return &Engine{db: db}
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// DefaultEngine returns the shared Engine backed by the process-wide
// x/text character database.
func DefaultEngine() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine(unicodedata.Default())
	})
	return defaultEngine
}

// Normalize rewrites seq into form f using the default engine.
func Normalize(f Form, seq []rune) ([]rune, error) {
	return DefaultEngine().Normalize(f, seq)
}

// QuickCheck runs the single-pass normalization heuristic on seq using
// the default engine.
func QuickCheck(f Form, seq []rune) CheckResult {
	return DefaultEngine().QuickCheck(f, seq)
}

// IsNormalized reports whether seq is in form f using the default engine.
func IsNormalized(f Form, seq []rune) (bool, error) {
	return DefaultEngine().IsNormalized(f, seq)
}

// Compare compares a and b for canonical equivalence using the default
// engine. The result is -1, 0, or 1.
func Compare(opts CompareOption, a, b []rune) (int, error) {
	return DefaultEngine().Compare(opts, a, b)
}

// NormalizeString is Normalize for UTF-8 strings.
func NormalizeString(f Form, s string) (string, error) {
	out, err := DefaultEngine().Normalize(f, []rune(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IsNormalString is IsNormalized for UTF-8 strings.
func IsNormalString(f Form, s string) (bool, error) {
	return DefaultEngine().IsNormalized(f, []rune(s))
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
