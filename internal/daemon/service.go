package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/dockprompt/internal/system"
)

// UnitName is the systemd user unit that runs `dockprompt watch`.
const UnitName = "dockprompt-watch.service"

const systemdUnit = `[Unit]
Description=dockprompt prompt check
After=graphical-session.target

[Service]
Type=simple
ExecStart={{.ExecutablePath}} watch
Restart=on-failure
RestartSec=30
Environment="XDG_DATA_HOME={{.DataHome}}"
Environment="XDG_CONFIG_HOME={{.ConfigHome}}"
Environment="XDG_STATE_HOME={{.StateHome}}"

[Install]
WantedBy=default.target
`

var unitTemplate = template.Must(template.New("unit").Parse(systemdUnit))

// ServiceManager installs the watch command as a systemd user service.
type ServiceManager struct {
	executablePath string
	unitDir        string
	run            system.Runner
}

// NewServiceManager creates a service manager for the running executable.
// An empty unitDir uses $XDG_CONFIG_HOME/systemd/user; a nil run uses
// system.ExecRunner.
func NewServiceManager(unitDir string, run system.Runner) (*ServiceManager, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	if unitDir == "" {
		unitDir = filepath.Join(xdg.ConfigHome, "systemd", "user")
	}
	if run == nil {
		run = system.ExecRunner
	}
	return &ServiceManager{executablePath: execPath, unitDir: unitDir, run: run}, nil
}

// UnitPath returns the unit file location.
func (m *ServiceManager) UnitPath() string {
	return filepath.Join(m.unitDir, UnitName)
}

// Render writes the unit file content to w.
func (m *ServiceManager) Render(w io.Writer) error {
	data := struct {
		ExecutablePath string
		DataHome       string
		ConfigHome     string
		StateHome      string
	}{
		ExecutablePath: m.executablePath,
		DataHome:       xdg.DataHome,
		ConfigHome:     xdg.ConfigHome,
		StateHome:      xdg.StateHome,
	}
	return unitTemplate.Execute(w, data)
}

// Install writes the unit file, then reloads, enables and starts it.
func (m *ServiceManager) Install() error {
	if err := os.MkdirAll(m.unitDir, 0o755); err != nil {
		return fmt.Errorf("failed to create systemd user directory: %w", err)
	}

	file, err := os.Create(m.UnitPath())
	if err != nil {
		return fmt.Errorf("failed to create unit file: %w", err)
	}
	if err := m.Render(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write unit: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write unit: %w", err)
	}

	for _, args := range [][]string{
		{"--user", "daemon-reload"},
		{"--user", "enable", "--now", UnitName},
	} {
		if err := m.systemctl(args...); err != nil {
			return err
		}
	}
	return nil
}

// Uninstall stops and disables the unit and removes its file. Stop and
// disable failures are ignored so a half-installed unit can be removed.
func (m *ServiceManager) Uninstall() error {
	_ = m.systemctl("--user", "disable", "--now", UnitName)

	if err := os.Remove(m.UnitPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove unit file: %w", err)
	}
	_ = m.systemctl("--user", "daemon-reload")
	return nil
}

// IsInstalled checks if the unit file exists.
func (m *ServiceManager) IsInstalled() bool {
	_, err := os.Stat(m.UnitPath())
	return err == nil
}

func (m *ServiceManager) systemctl(args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if out, err := m.run(ctx, "systemctl", args...); err != nil {
		return fmt.Errorf("systemctl %v: %w: %s", args, err, out)
	}
	return nil
}
