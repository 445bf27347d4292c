// Package daemon keeps `dockprompt watch` to a single instance and installs
// it as a systemd user service.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for state directories.
	AppName = "dockprompt"
	// PIDFileName is the PID file name.
	PIDFileName = "watch.pid"
)

// Errors
var (
	ErrNotRunning     = fmt.Errorf("watch is not running")
	ErrAlreadyRunning = fmt.Errorf("watch is already running")
)

// PIDFile records the PID of the running watch process.
type PIDFile struct {
	path string
}

// NewPIDFile creates a PID file manager for path, or the default location
// when path is empty.
func NewPIDFile(path string) *PIDFile {
	if path == "" {
		path = DefaultPIDFilePath()
	}
	return &PIDFile{path: path}
}

// DefaultPIDFilePath returns the PID file path under the XDG state directory.
func DefaultPIDFilePath() string {
	return filepath.Join(xdg.StateHome, AppName, PIDFileName)
}

// Acquire writes the current PID unless another live process holds the
// file. A stale file left by a crashed process is replaced.
func (p *PIDFile) Acquire() error {
	if pid := p.RunningPID(); pid != 0 && pid != os.Getpid() {
		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}
	return p.WritePID(os.Getpid())
}

// Release removes the PID file if it still names this process.
func (p *PIDFile) Release() error {
	pid, err := p.Read()
	if err != nil {
		return nil
	}
	if pid != os.Getpid() {
		return nil
	}
	return p.Remove()
}

// WritePID writes a specific PID to the file.
func (p *PIDFile) WritePID(pid int) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create PID directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Read reads the PID from the file.
func (p *PIDFile) Read() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotRunning
		}
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// Remove removes the PID file.
func (p *PIDFile) Remove() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// RunningPID returns the recorded PID if that process is alive, or 0.
func (p *PIDFile) RunningPID() int {
	pid, err := p.Read()
	if err != nil || !IsProcessRunning(pid) {
		return 0
	}
	return pid
}

// Path returns the PID file path.
func (p *PIDFile) Path() string {
	return p.path
}

// IsProcessRunning checks if a process with the given PID is running.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// On Unix, FindProcess always succeeds, so we need to send signal 0 to check
	return process.Signal(syscall.Signal(0)) == nil
}
