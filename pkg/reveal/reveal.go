// Package reveal shows folders in the operating system's file browser.
package reveal

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Revealer opens a path in the system file browser. It is fire-and-forget:
// failures are logged by the implementation, never returned.
type Revealer interface {
	ShowInSystemFolderBrowser(path string)
}

// System reveals paths with the platform's default file manager.
type System struct {
	logger logrus.FieldLogger
	goos   string
	start  func(cmd *exec.Cmd) error
}

// NewSystem returns a revealer for the current platform.
func NewSystem(logger logrus.FieldLogger) *System {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &System{
		logger: logger,
		goos:   runtime.GOOS,
		start:  func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

func (s *System) ShowInSystemFolderBrowser(path string) {
	cmd, err := Command(s.goos, path)
	if err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("cannot reveal folder")
		return
	}

	s.logger.WithField("path", path).WithField("cmd", cmd.Args[0]).Debug("revealing folder")
	if err := s.start(cmd); err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("reveal failed")
		return
	}

	// Reap the child without blocking the caller.
	go func() { _ = cmd.Wait() }()
}

// Command builds the file-browser invocation for goos.
func Command(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("explorer", path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Recorder remembers revealed paths instead of opening them. Used when
// reveal_in_browser is off and in tests.
type Recorder struct {
	Paths []string
}

func (r *Recorder) ShowInSystemFolderBrowser(path string) {
	r.Paths = append(r.Paths, path)
}
