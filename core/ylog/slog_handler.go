package ylog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
)

// handler formats every record into a shared buffer and then routes it,
// error records go to errWriter and everything else goes to writer.
type handler struct {
	slog.Handler

	buf *lockedBuffer

	writer    io.Writer
	errWriter io.Writer
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// drainTo moves the buffered record into w and empties the buffer.
func (b *lockedBuffer) drainTo(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.buf.WriteTo(w)
	b.buf.Reset()
	return err
}

// NewHandlerFromConfig creates a slog.Handler from conf
func NewHandlerFromConfig(conf Config) slog.Handler {
	buf := &lockedBuffer{}

	h := bufferedSlogHandler(
		buf,
		conf.Format,
		parseToSlogLevel(conf.Level),
		conf.Verbose,
		conf.DisableTime,
	)

	return &handler{
		Handler:   h,
		buf:       buf,
		writer:    parseToWriter(conf, conf.Output, os.Stdout),
		errWriter: parseToWriter(conf, conf.ErrorOutput, os.Stderr),
	}
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.Handler.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= slog.LevelError {
		return h.buf.drainTo(h.errWriter)
	}
	return h.buf.drainTo(h.writer)
}

func (h *handler) WithAttrs(as []slog.Attr) slog.Handler {
	return &handler{
		buf:       h.buf,
		writer:    h.writer,
		errWriter: h.errWriter,
		Handler:   h.Handler.WithAttrs(as),
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{
		buf:       h.buf,
		writer:    h.writer,
		errWriter: h.errWriter,
		Handler:   h.Handler.WithGroup(name),
	}
}

func bufferedSlogHandler(buf io.Writer, format string, level slog.Level, verbose, disableTime bool) slog.Handler {
	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if disableTime && a.Key == slog.TimeKey && len(groups) == 0 {
			return slog.Attr{}
		}
		return a
	}

	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(buf, &slog.HandlerOptions{
			AddSource:   verbose,
			Level:       level,
			ReplaceAttr: replaceAttr,
		})
	}

	return tint.NewHandler(buf, &tint.Options{
		AddSource:   verbose,
		Level:       level,
		ReplaceAttr: replaceAttr,
	})
}
