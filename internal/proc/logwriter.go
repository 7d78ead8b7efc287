package proc

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
)

// lineWriter turns a child's output stream into one log record per line.
// A nil *lineWriter is valid and Flush on it is a no-op.
type lineWriter struct {
	mu     sync.Mutex
	log    *slog.Logger
	child  string
	stream string
	buf    bytes.Buffer
}

func newLineWriter(log *slog.Logger, child, stream string) *lineWriter {
	return &lineWriter{log: log, child: child, stream: stream}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(w.buf.Next(i + 1))
		w.emit(line)
	}
	return len(p), nil
}

// Flush logs any trailing output that did not end in a newline.
func (w *lineWriter) Flush() {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	w.log.Info(line, "child", w.child, "stream", w.stream)
}
