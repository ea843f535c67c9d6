package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook buffers entries and writes them from a single goroutine.
// When the buffer is full new entries are dropped instead of blocking.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	h := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}
	h.wg.Add(1)
	go h.processEntries()
	return h
}

func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	if _, skip := entry.Data[filteredField]; skip {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return h.write(entry)
	}

	select {
	case h.entries <- snapshot(entry):
	default:
	}
	return nil
}

// snapshot copies entry for the writer goroutine. Dup keeps only the
// fields, time and context, so level, message and caller are copied here.
func snapshot(entry *logrus.Entry) *logrus.Entry {
	e := entry.Dup()
	e.Level = entry.Level
	e.Message = entry.Message
	e.Caller = entry.Caller
	return e
}

func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// the logger cannot log its own failure
					fmt.Fprintf(os.Stderr, "[logger] async writer panic: %v\n", r)
					debug.PrintStack()
				}
			}()
			_ = h.write(entry)
		}()
	}
}

func (h *AsyncHook) write(entry *logrus.Entry) error {
	var data []byte
	var err error
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		data, err = entry.Logger.Formatter.Format(entry)
	} else {
		var line string
		line, err = entry.String()
		data = []byte(line)
	}
	if err != nil {
		return err
	}

	for _, w := range h.writers {
		_, _ = w.Write(data)
	}
	return nil
}

// Close stops accepting entries and waits for the queue to drain.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.entries)
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}

const filteredField = "_filtered"

// FilterHook marks entries whose "module" field is not in the allowed set.
// Entries without a module always pass.
type FilterHook struct {
	allowed map[string]bool
}

func NewFilterHook(modules string) *FilterHook {
	h := &FilterHook{allowed: make(map[string]bool)}
	for _, m := range strings.Split(modules, ",") {
		if m = strings.TrimSpace(strings.ToLower(m)); m != "" {
			h.allowed[m] = true
		}
	}
	return h
}

func (h *FilterHook) active() bool {
	return len(h.allowed) > 0 && !h.allowed["*"]
}

func (h *FilterHook) Levels() []logrus.Level {
	// errors are never filtered
	return []logrus.Level{logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel, logrus.WarnLevel}
}

func (h *FilterHook) Fire(entry *logrus.Entry) error {
	module, ok := entry.Data["module"].(string)
	if !ok || h.allowed[strings.ToLower(module)] {
		return nil
	}
	entry.Data[filteredField] = true
	return nil
}
