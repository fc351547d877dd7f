package futures

import (
	"os"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the type this package logs diagnostics through. It is the
// generified form of a [logiface.Logger], meaning any concrete event type a
// caller's logging backend uses (stumpy, zerolog, logrus, slog, ...) can be
// plugged in via [SetLogger], following the same package-level
// configuration pattern as eventloop's package-level
// SetStructuredLogger.
type Logger = logiface.Logger[logiface.Event]

var globalLogger struct {
	sync.RWMutex
	logger *Logger
}

func init() {
	globalLogger.logger = stumpy.L.New(
		stumpy.WithStumpy(stumpy.WithWriter(os.Stderr)),
		stumpy.L.WithLevel(logiface.LevelWarning),
	).Logger()
}

// SetLogger installs the package-level [Logger] used for diagnostics: warnings
// about resource exhaustion (e.g. a Slot callback slot already occupied) and,
// in the future's debug-oriented paths, contract violations such as
// reentrant TaskData access. A nil logger restores a level-gated default
// writing to stderr.
func SetLogger(l *Logger) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	if l == nil {
		l = stumpy.L.New(
			stumpy.WithStumpy(stumpy.WithWriter(os.Stderr)),
			stumpy.L.WithLevel(logiface.LevelWarning),
		).Logger()
	}
	globalLogger.logger = l
}

func getLogger() *Logger {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.logger
}

func logSlotCallbackOccupied(name, flavor string) {
	e := getLogger().Warning().Str("flavor", flavor)
	if name != "" {
		e = e.Str("slot", name)
	}
	e.Log("futures: slot callback registration rejected, slot already occupied")
}

func logReentrantTaskData(key int) {
	getLogger().Err().
		Int("key", key).
		Log("futures: reentrant TaskData access detected")
}

func logPolledAfterComplete(kind string) {
	getLogger().DPanic().
		Str("kind", kind).
		Log("futures: poll called on a completed future")
}
