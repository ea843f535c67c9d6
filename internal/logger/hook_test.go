package logger

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(out *syncBuffer, modules string) (*logrus.Logger, *AsyncHook) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetOutput(bytes.NewBuffer(nil))
	if f := NewFilterHook(modules); f.active() {
		l.AddHook(f)
	}
	hook := NewAsyncHook([]io.Writer{out}, 10)
	l.AddHook(hook)
	return l, hook
}

func TestAsyncHookWritesAfterClose(t *testing.T) {
	out := &syncBuffer{}
	l, hook := newTestLogger(out, "")

	l.WithField("module", "sales").Info("bill created")
	assert.NoError(t, hook.Close())

	assert.Contains(t, out.String(), "bill created")

	// writes after Close go straight to the writers
	l.Info("late entry")
	assert.Contains(t, out.String(), "late entry")
}

func TestFilterHookDropsOtherModules(t *testing.T) {
	out := &syncBuffer{}
	l, hook := newTestLogger(out, "sales, report")

	l.WithField("module", "customer").Info("customer noise")
	l.WithField("module", "Sales").Info("sales kept")
	l.Info("no module kept")
	l.WithField("module", "customer").Error("errors always kept")
	assert.NoError(t, hook.Close())

	got := out.String()
	assert.NotContains(t, got, "customer noise")
	assert.Contains(t, got, "sales kept")
	assert.Contains(t, got, "no module kept")
	assert.Contains(t, got, "errors always kept")
	assert.False(t, strings.Contains(got, filteredField))
}

func TestFilterHookWildcardIsInactive(t *testing.T) {
	assert.False(t, NewFilterHook("*").active())
	assert.False(t, NewFilterHook("").active())
	assert.True(t, NewFilterHook("sales").active())
}

func TestRequestIDContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))

	entry := WithContext(ctx)
	assert.Equal(t, "req-42", entry.Data["request_id"])
}

func TestAsyncHookKeepsLevelAndMessage(t *testing.T) {
	out := &syncBuffer{}
	l, hook := newTestLogger(out, "")
	l.SetReportCaller(true)

	l.WithField("module", "sales").Warn("total drift on bill")
	l.WithField("module", "report").Error("aggregate failed")
	assert.NoError(t, hook.Close())

	got := out.String()
	assert.Contains(t, got, `level=warning msg="total drift on bill"`)
	assert.Contains(t, got, `level=error msg="aggregate failed"`)
	assert.Contains(t, got, "hook_test.go")
	assert.NotContains(t, got, "level=panic")
}
