package notify

import (
	"sync"

	"weathercast/internal/domain/model"
)

// DefaultInboxSize is used when an inbox is created with a non-positive capacity
const DefaultInboxSize = 20

// Inbox buffers notifications until the client drains them. When full the oldest is dropped.
type Inbox struct {
	mutex         sync.Mutex
	notifications []model.Notification
	capacity      int
	dropped       int
}

func NewInbox(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = DefaultInboxSize
	}
	return &Inbox{capacity: capacity}
}

func (i *Inbox) Notify(notification model.Notification) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	if len(i.notifications) == i.capacity {
		i.notifications = i.notifications[1:]
		i.dropped++
	}
	i.notifications = append(i.notifications, notification)
}

// Drain returns the buffered notifications, oldest first, and empties the inbox
func (i *Inbox) Drain() []model.Notification {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	drained := i.notifications
	i.notifications = nil
	if drained == nil {
		return []model.Notification{}
	}
	return drained
}

func (i *Inbox) Len() int {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return len(i.notifications)
}

// Dropped returns how many notifications were discarded because the inbox was full
func (i *Inbox) Dropped() int {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	return i.dropped
}

var _ Notifier = (*Inbox)(nil)
