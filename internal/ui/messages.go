package ui

// longPressMsg fires when the "Go to start" button has been held long
// enough. It is ignored unless id still matches the current press.
type longPressMsg struct {
	id int
}

// notificationExpiredMsg clears the notification it was scheduled for.
// A newer notification bumps the id so an older timer cannot clear it.
type notificationExpiredMsg struct {
	id int
}

// activityClosedMsg is sent when the activity pager exits
type activityClosedMsg struct {
	err error
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has returned the terminal
type resumeRenderingMsg struct{}
