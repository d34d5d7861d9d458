package store

import (
	"io"
	"log/slog"
	"time"
)

// PatchEvent records one applied patch.
type PatchEvent struct {
	UserID         string
	Fields         []string
	ExtractedTasks int
	Duration       time.Duration
}

// SaveEvent records one write-through attempt. Err is nil on success; save
// failures are reported here and nowhere else.
type SaveEvent struct {
	UserID   string
	Err      error
	Duration time.Duration
}

// Observer receives store telemetry.
type Observer interface {
	OnPatch(event PatchEvent)
	OnSave(event SaveEvent)
}

// NoopObserver ignores all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnPatch(PatchEvent) {}
func (NoopObserver) OnSave(SaveEvent)   {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes store events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnPatch(event PatchEvent) {
	o.logger.Info("store_patch",
		"user_id", event.UserID,
		"fields", event.Fields,
		"extracted_tasks", event.ExtractedTasks,
		"duration_ms", event.Duration.Milliseconds(),
	)
}

func (o *logObserver) OnSave(event SaveEvent) {
	if event.Err != nil {
		o.logger.Error("store_save",
			"user_id", event.UserID,
			"duration_ms", event.Duration.Milliseconds(),
			"error", event.Err.Error(),
		)
		return
	}
	o.logger.Info("store_save",
		"user_id", event.UserID,
		"duration_ms", event.Duration.Milliseconds(),
	)
}
