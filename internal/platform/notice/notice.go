// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notice carries transient, user-visible notifications from the client
packages (catalog, detail, reader) to whatever front end hosts them.

Client packages never surface fetch errors as return values to their views;
they degrade to empty data and emit a [Notice] instead. The host decides how
to show it (a toast, a terminal line, a test assertion).
*/
package notice

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Variant classifies the visual weight of a [Notice].
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a single transient message.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier receives notices. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Error builds a destructive [Notice].
func Error(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: VariantDestructive}
}

// # Implementations

// LogNotifier writes every notice to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs a [LogNotifier].
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements [Notifier].
func (n *LogNotifier) Notify(ctx context.Context, item Notice) {
	level := slog.LevelInfo
	if item.Variant == VariantDestructive {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, "user_notice",
		slog.String("title", item.Title),
		slog.String("description", item.Description),
	)
}

// Recorder keeps notices in memory until drained.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements [Notifier].
func (r *Recorder) Notify(_ context.Context, item Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, item)
}

// All returns a copy of every notice recorded so far.
func (r *Recorder) All() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.notices)
}

// Drain returns the recorded notices and clears the buffer.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	drained := r.notices
	r.notices = nil
	return drained
}

// Multi fans a notice out to several notifiers.
type Multi []Notifier

// Notify implements [Notifier].
func (m Multi) Notify(ctx context.Context, item Notice) {
	for _, notifier := range m {
		notifier.Notify(ctx, item)
	}
}
