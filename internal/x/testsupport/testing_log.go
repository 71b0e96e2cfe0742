package testsupport

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestingLog collects everything logged through it instead of printing it,
// so tests can make assertions on log output written from other goroutines.
type TestingLog struct {
	testing.TB

	mut sync.Mutex
	buf strings.Builder
}

func (t *TestingLog) Log(args ...any) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.buf.WriteString(fmt.Sprint(args...))
}

func (t *TestingLog) Logf(format string, args ...any) {
	t.mut.Lock()
	defer t.mut.Unlock()

	fmt.Fprintf(&t.buf, format, args...)
}

func (t *TestingLog) CollectedLog() string {
	t.mut.Lock()
	defer t.mut.Unlock()

	return t.buf.String()
}
