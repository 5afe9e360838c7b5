package metrics

// Recorder defines observability hooks for timer activity.
type Recorder interface {
	IncTransition(event string)
	IncCompletion(mode string)
	SetRemaining(seconds int)
	SetFocusTally(n int)
	SetRunning(running bool)
	IncTipResult(source string)
	IncCueFailure()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncTransition(string) {}
func (NoopRecorder) IncCompletion(string) {}
func (NoopRecorder) SetRemaining(int)     {}
func (NoopRecorder) SetFocusTally(int)    {}
func (NoopRecorder) SetRunning(bool)      {}
func (NoopRecorder) IncTipResult(string)  {}
func (NoopRecorder) IncCueFailure()       {}
