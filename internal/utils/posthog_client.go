// posthog_client.go wraps the PostHog client so callers need not care whether analytics is configured.
package utils

import (
	"io"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// EventSink is the part of posthog.Client the tracker uses.
type EventSink interface {
	Enqueue(posthog.Message) error
	io.Closer
}

// PosthogClientWrapper sends usage events for authenticated customers. The
// zero value is a disabled tracker.
type PosthogClientWrapper struct {
	sink   EventSink
	logger *slog.Logger
}

// InitializePosthogClient returns a disabled tracker when apiKey is empty.
func InitializePosthogClient(apiKey, endpoint string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Info("POSTHOG_API_KEY not set, usage events are disabled")
		return &PosthogClientWrapper{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to initialize posthog client, usage events are disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return NewPosthogClientWrapper(client, logger)
}

// NewPosthogClientWrapper wraps an already configured sink.
func NewPosthogClientWrapper(sink EventSink, logger *slog.Logger) *PosthogClientWrapper {
	return &PosthogClientWrapper{sink: sink, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.sink != nil
}

func (w *PosthogClientWrapper) Enqueue(distinctID string, event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	err := w.sink.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (w *PosthogClientWrapper) Close() error {
	if !w.IsInitialized() {
		return nil
	}
	return w.sink.Close()
}
