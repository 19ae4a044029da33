package notify

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// Color is the severity channel a notification is rendered with.
type Color string

const (
	// ColorError marks failure notifications.
	ColorError Color = "error"
	// ColorWarning is reserved for degraded-but-recoverable conditions.
	// No classifier kind maps to it today.
	ColorWarning Color = "warning"
	// ColorSuccess marks confirmation notifications.
	ColorSuccess Color = "success"
)

// Notification is the user-facing toast model produced by the session
// engine: a stable title per error kind, a human-readable description,
// and a severity color.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       Color  `json:"color"`
}

// Sink receives dispatched notifications.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

// NoOpSink drops notifications.
type NoOpSink struct{}

func (NoOpSink) Notify(context.Context, Notification) {}

// ChannelSink writes notifications into a buffered channel.
type ChannelSink struct {
	notifications chan Notification
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		notifications: make(chan Notification, buffer),
	}
}

func (s *ChannelSink) Notify(ctx context.Context, n Notification) {
	select {
	case s.notifications <- n:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Notifications() <-chan Notification {
	return s.notifications
}

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

func (s *JSONWriterSink) Notify(ctx context.Context, n Notification) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(n)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
