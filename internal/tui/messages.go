package tui

// refreshDoneMsg fires when the simulated refresh delay elapses. There is no
// backend, so nothing new arrives with it.
type refreshDoneMsg struct{}
