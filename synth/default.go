package synth

import "sync"

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// Default returns the process-wide engine, creating it on first use.
// Use Any and Many to access it from several goroutines.
func Default() *Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return defaultLocked()
}

// SetDefault replaces the process-wide engine.
func SetDefault(e *Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultEngine = e
}

func defaultLocked() *Engine {
	if defaultEngine == nil {
		defaultEngine = MustNew()
	}

	return defaultEngine
}

// Any produces one value of T with the process-wide engine.
func Any[T any]() (T, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return Produce[T](defaultLocked())
}

// Many produces count values of T with the process-wide engine.
func Many[T any](count int, opts ...BatchOption) ([]T, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return ProduceMany[T](defaultLocked(), count, opts...)
}
