package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

type PrettyJSONHandlerOptions struct {
	slog.HandlerOptions
	PrettyPrint bool
}

// NewPrettyJSONHandler returns a JSON handler which indents every record when PrettyPrint is set.
// It is meant for local development, production should log one record per line.
func NewPrettyJSONHandler(w io.Writer, opts *PrettyJSONHandlerOptions) slog.Handler {
	if opts == nil {
		opts = &PrettyJSONHandlerOptions{}
	}

	return &prettyHandler{
		JSONHandler:    slog.NewJSONHandler(w, &opts.HandlerOptions),
		writer:         w,
		mu:             &sync.Mutex{},
		prettyPrint:    opts.PrettyPrint,
		handlerOptions: &opts.HandlerOptions,
	}
}

type prettyHandler struct {
	*slog.JSONHandler
	writer         io.Writer
	mu             *sync.Mutex
	prettyPrint    bool
	handlerOptions *slog.HandlerOptions
	// with replays WithAttrs and WithGroup calls on the temporary handler used for indenting
	with []func(slog.Handler) slog.Handler
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.prettyPrint {
		return h.JSONHandler.Handle(ctx, r)
	}

	buf := &bytes.Buffer{}

	var tempHandler slog.Handler = slog.NewJSONHandler(buf, h.handlerOptions)
	for _, f := range h.with {
		tempHandler = f(tempHandler)
	}
	if err := tempHandler.Handle(ctx, r); err != nil {
		return err
	}

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, buf.Bytes(), "", "  "); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(prettyJSON.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler {
		return handler.WithAttrs(attrs)
	})
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler {
		return handler.WithGroup(name)
	})
}

func (h *prettyHandler) derive(f func(slog.Handler) slog.Handler) *prettyHandler {
	with := make([]func(slog.Handler) slog.Handler, len(h.with), len(h.with)+1)
	copy(with, h.with)

	return &prettyHandler{
		JSONHandler:    f(h.JSONHandler).(*slog.JSONHandler),
		writer:         h.writer,
		mu:             h.mu,
		prettyPrint:    h.prettyPrint,
		handlerOptions: h.handlerOptions,
		with:           append(with, f),
	}
}
