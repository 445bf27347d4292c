// Package system implements the dock, default-browser and onboarding
// collaborators of the prompt coordinator.
package system

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/manav03panchal/dockprompt/internal/errors"
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/storage"
)

// Runner executes an external command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// commandTimeout bounds every xdg-settings invocation.
const commandTimeout = 5 * time.Second

// StoredDock keeps dock membership in the database.
type StoredDock struct {
	flags *storage.FlagRepo
}

// NewStoredDock creates a dock backed by flags.
func NewStoredDock(flags *storage.FlagRepo) *StoredDock {
	return &StoredDock{flags: flags}
}

// IsAddedToDock reports the stored dock flag.
func (d *StoredDock) IsAddedToDock() bool {
	added, err := d.flags.GetBool(model.KeyDockAdded)
	if err != nil {
		logging.Warn("failed to read dock status", logging.KeyError, err)
		return false
	}
	return added
}

// AddToDock stores the dock flag and reports success.
func (d *StoredDock) AddToDock() bool {
	if err := d.flags.SetBool(model.KeyDockAdded, true); err != nil {
		logging.Warn("failed to add to dock", logging.KeyError, err)
		return false
	}
	return true
}

// RemoveFromDock clears the dock flag.
func (d *StoredDock) RemoveFromDock() error {
	return d.flags.SetBool(model.KeyDockAdded, false)
}

// XDGDefaultBrowser queries and sets the default browser with
// xdg-settings. When the tool is missing the answer comes from a stored
// flag instead.
type XDGDefaultBrowser struct {
	desktopFile string
	flags       *storage.FlagRepo
	run         Runner
	lookPath    func(string) (string, error)
}

// NewXDGDefaultBrowser creates a provider for the given desktop entry.
// A nil run uses ExecRunner.
func NewXDGDefaultBrowser(desktopFile string, flags *storage.FlagRepo, run Runner) *XDGDefaultBrowser {
	if run == nil {
		run = ExecRunner
	}
	return &XDGDefaultBrowser{
		desktopFile: desktopFile,
		flags:       flags,
		run:         run,
		lookPath:    exec.LookPath,
	}
}

func (b *XDGDefaultBrowser) hasXDGSettings() bool {
	_, err := b.lookPath("xdg-settings")
	return err == nil
}

// IsDefault reports whether the desktop entry is the default web browser.
func (b *XDGDefaultBrowser) IsDefault() bool {
	if !b.hasXDGSettings() {
		return b.storedDefault()
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	out, err := b.run(ctx, "xdg-settings", "get", "default-web-browser")
	if err != nil {
		logging.Warn("xdg-settings get failed, using stored value", logging.KeyError, err)
		return b.storedDefault()
	}
	return strings.TrimSpace(string(out)) == b.desktopFile
}

// PresentDefaultBrowserPrompt asks the system to make the desktop entry the
// default web browser.
func (b *XDGDefaultBrowser) PresentDefaultBrowserPrompt() error {
	if b.hasXDGSettings() {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		if _, err := b.run(ctx, "xdg-settings", "set", "default-web-browser", b.desktopFile); err != nil {
			return errors.NewSystemErrorWithOp("xdg-settings set",
				fmt.Sprintf("failed to set %s as default browser", b.desktopFile),
				fmt.Errorf("%w: %w", errors.ErrCommandFailed, err))
		}
	}
	if err := b.flags.SetBool(model.KeyDefaultBrowser, true); err != nil {
		return errors.NewSystemError("failed to record default browser", err)
	}
	return nil
}

func (b *XDGDefaultBrowser) storedDefault() bool {
	v, err := b.flags.GetBool(model.KeyDefaultBrowser)
	if err != nil {
		logging.Warn("failed to read default browser status", logging.KeyError, err)
		return false
	}
	return v
}

// StoredOnboarding keeps onboarding completion in the database.
type StoredOnboarding struct {
	flags *storage.FlagRepo
}

// NewStoredOnboarding creates an onboarding status backed by flags.
func NewStoredOnboarding(flags *storage.FlagRepo) *StoredOnboarding {
	return &StoredOnboarding{flags: flags}
}

// IsOnboardingCompleted reports the stored onboarding flag.
func (o *StoredOnboarding) IsOnboardingCompleted() bool {
	done, err := o.flags.GetBool(model.KeyOnboardingCompleted)
	if err != nil {
		logging.Warn("failed to read onboarding status", logging.KeyError, err)
		return false
	}
	return done
}

// Complete marks onboarding as finished.
func (o *StoredOnboarding) Complete() error {
	return o.flags.SetBool(model.KeyOnboardingCompleted, true)
}

// Reset marks onboarding as not finished.
func (o *StoredOnboarding) Reset() error {
	return o.flags.SetBool(model.KeyOnboardingCompleted, false)
}
