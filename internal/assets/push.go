package assets

import (
	"context"
	"log"
)

const defaultIconPath = "/icons/icon-192x192.png"

// PushPayload is the JSON body of an incoming push message. Every field
// is optional; Notification applies the defaults.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Badge string `json:"badge"`
}

// Notification is a fully defaulted system notification.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Badge string `json:"badge"`
}

// Notification fills in the defaults for absent payload fields.
func (p PushPayload) Notification() Notification {
	n := Notification{Title: p.Title, Body: p.Body, Icon: p.Icon, Badge: p.Badge}
	if n.Title == "" {
		n.Title = "Notification"
	}
	if n.Body == "" {
		n.Body = "You have a new notification."
	}
	if n.Icon == "" {
		n.Icon = defaultIconPath
	}
	if n.Badge == "" {
		n.Badge = defaultIconPath
	}
	return n
}

// Notifier displays notifications. The host supplies a real
// implementation; LogNotifier is the default.
type Notifier interface {
	Show(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Show(_ context.Context, n Notification) error {
	log.Printf("notification: %s: %s", n.Title, n.Body)
	return nil
}

// HandlePush defaults and dispatches one push payload.
func (w *Worker) HandlePush(ctx context.Context, p PushPayload) error {
	return w.notifier.Show(ctx, p.Notification())
}
