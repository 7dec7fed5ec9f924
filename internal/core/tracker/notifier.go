package tracker

import (
	"github.com/mindcleanse/go-mindcleanse/internal/util"
)

// Notifier is the fire-and-forget sink for threshold notifications. The
// caller never waits on delivery and there is no retry.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(title, message string) {
	f(title, message)
}

// LogNotifier writes notifications to the application log. It stands in for
// the toast/system-notification surface of a real client.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(title, message string) {
	util.LogInfof("Notification: %s - %s", title, message)
}

type noopNotifier struct{}

func (noopNotifier) Notify(title, message string) {}
