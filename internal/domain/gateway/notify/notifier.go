package notify

import (
	"time"

	"weathercast/internal/domain/model"
	"weathercast/pkg/msg"
)

// Notifier receives user-facing notifications emitted by a dashboard
type Notifier interface {
	Notify(notification model.Notification)
}

// NewNotification builds a destructive notification of kind with its configured title and description
func NewNotification(kind model.NotificationKind, now time.Time) model.Notification {
	return model.Notification{
		Kind:        kind,
		Title:       msg.GetMessage("notification." + string(kind) + ".title"),
		Description: msg.GetMessage("notification." + string(kind) + ".description"),
		Variant:     model.VariantDestructive,
		CreatedAt:   now,
	}
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(notification model.Notification)

func (f NotifierFunc) Notify(notification model.Notification) {
	f(notification)
}
