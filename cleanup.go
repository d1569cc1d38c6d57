package vkboot

// releaseStack collects release closures in acquisition order and runs them
// in reverse. It backs both Teardown and mid-bootstrap unwinding, so a
// failed Bootstrap never leaves a native resource behind.
type releaseStack struct {
	releases []func()
}

func (s *releaseStack) push(release func()) {
	s.releases = append(s.releases, release)
}

// run executes the stacked releases newest-first, exactly once.
func (s *releaseStack) run() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}
