package tui

// submitDoneMsg is the resolution of one submission attempt. The attempt
// ID lets the update loop drop resolutions that no longer match the
// in-flight attempt (for example after a reset raced the callback).
type submitDoneMsg struct {
	attempt string
	err     error
}
