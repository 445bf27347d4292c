// Package runtime provides application runtime context for dockprompt.
package runtime

import (
	"io"
	"os"
	"time"

	"github.com/manav03panchal/dockprompt/internal/config"
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/notify"
	"github.com/manav03panchal/dockprompt/internal/output"
	"github.com/manav03panchal/dockprompt/internal/prompt"
	"github.com/manav03panchal/dockprompt/internal/storage"
	"github.com/manav03panchal/dockprompt/internal/system"
	"github.com/manav03panchal/dockprompt/internal/telemetry"
	"github.com/manav03panchal/dockprompt/internal/validate"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Config    *config.RuntimeConfig

	// Repositories
	PromptRepo   *storage.PromptRepo
	ActivityRepo *storage.ActivityRepo
	SettingsRepo *storage.SettingsRepo
	FlagRepo     *storage.FlagRepo
	PixelRepo    *storage.PixelRepo

	// Prompt engine
	Calendar    prompt.Calendar
	Flags       *SettingsFlagger
	Activity    *prompt.UserActivityManager
	Decider     *prompt.PromptTypeDecider
	Coordinator *prompt.Coordinator

	// Collaborators
	Dock       prompt.DockCustomization
	Browser    prompt.DefaultBrowserProvider
	Onboarding *system.StoredOnboarding
	Presenter  notify.MultiPresenter
	Pixels     *telemetry.Recorder

	// Debug mode
	Debug bool

	now func() time.Time
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool

	// Now replaces the wall clock, e.g. for --now.
	Now func() time.Time
	// InstallNow stamps the install date of a fresh database. Defaults to
	// time.Now so a --now offset on the first run does not shift it.
	InstallNow func() time.Time
	// Out receives console notifications. Defaults to os.Stdout.
	Out io.Writer

	// AssumeDefault and AssumeInDock replace the system collaborators with
	// fixed answers when set.
	AssumeDefault *bool
	AssumeInDock  *bool

	// Config overrides config.Global.
	Config *config.RuntimeConfig
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv(config.EnvDatabase); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.InstallNow == nil {
		opts.InstallNow = time.Now
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Global
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}
	logging.DebugLog("database opened", "path", db.Path(), "in_memory", db.Path() == "")

	ctx := &Context{
		DB:           db,
		Config:       cfg,
		PromptRepo:   storage.NewPromptRepo(db),
		ActivityRepo: storage.NewActivityRepo(db),
		SettingsRepo: storage.NewSettingsRepo(db),
		FlagRepo:     storage.NewFlagRepo(db),
		PixelRepo:    storage.NewPixelRepo(db),
		Calendar:     prompt.Calendar{Location: time.Local},
		Debug:        opts.Debug,
		now:          opts.Now,
	}

	if _, err := ctx.FlagRepo.EnsureInstallDate(opts.InstallNow()); err != nil {
		db.Close()
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	ctx.Formatter = formatter

	ctx.wire(opts)
	return ctx, nil
}

func (c *Context) wire(opts Options) {
	cfg := c.Config
	webhookURL := checkedEndpoint("notification webhook", cfg.Notify.WebhookURL)
	pixelEndpoint := checkedEndpoint("pixel endpoint", cfg.Telemetry.PixelEndpoint)
	desktopFile := cfg.System.BrowserDesktopFile
	if err := validate.DesktopFile(desktopFile); err != nil {
		logging.Warn("invalid browser desktop file, using default",
			"value", desktopFile, logging.KeyError, err)
		desktopFile = config.DefaultRuntimeConfig().System.BrowserDesktopFile
	}

	httpClient := notify.NewHTTPClient(cfg.HTTP)

	c.Flags = NewSettingsFlagger(c.SettingsRepo, cfg.Prompt.FlagsFile)
	c.Activity = prompt.NewUserActivityManager(c.ActivityRepo, c.now, c.Calendar)
	c.Decider = prompt.NewPromptTypeDecider(prompt.DeciderConfig{
		Flags:       c.Flags,
		Store:       c.PromptRepo,
		Activity:    c.Activity,
		InstallDate: c.InstallDate,
		Now:         c.now,
		Calendar:    c.Calendar,
	})

	if opts.AssumeInDock != nil {
		c.Dock = &system.StaticDock{Added: *opts.AssumeInDock}
	} else {
		c.Dock = system.NewStoredDock(c.FlagRepo)
	}
	if opts.AssumeDefault != nil {
		c.Browser = &system.StaticBrowser{Default: *opts.AssumeDefault}
	} else {
		c.Browser = system.NewXDGDefaultBrowser(desktopFile, c.FlagRepo, system.ExecRunner)
	}
	c.Onboarding = system.NewStoredOnboarding(c.FlagRepo)

	// JSON output must stay parseable, so the console presenter is CLI only.
	if !c.Formatter.IsJSON() {
		c.Presenter = append(c.Presenter, notify.NewConsolePresenter(opts.Out, c.now))
	}
	if webhookURL != "" {
		c.Presenter = append(c.Presenter, notify.NewWebhookPresenter(webhookURL, httpClient, c.now))
	}

	c.Pixels = telemetry.NewRecorder(c.PixelRepo, telemetry.Options{
		Endpoint: pixelEndpoint,
		Sender:   httpClient,
		Now:      c.now,
		SameDay:  c.Calendar.IsSameDay,
	})

	c.Coordinator = prompt.NewCoordinator(prompt.CoordinatorConfig{
		Decider:             c.Decider,
		Store:               c.PromptRepo,
		Onboarding:          c.Onboarding,
		Dock:                c.Dock,
		DefaultBrowser:      c.Browser,
		Notifications:       c.Presenter,
		Pixels:              c.Pixels,
		Now:                 c.now,
		DockPromptAvailable: cfg.Prompt.DockPromptAvailable,
	})
}

// checkedEndpoint returns raw, or "" with a warning when raw is set but
// not a usable endpoint.
func checkedEndpoint(name, raw string) string {
	if raw == "" {
		return ""
	}
	if err := validate.URL(raw); err != nil {
		logging.Warn("ignoring invalid "+name, "url", logging.MaskURL(raw), logging.KeyError, err)
		return ""
	}
	return raw
}

// Now returns the context's current time.
func (c *Context) Now() time.Time {
	return c.now()
}

// InstallDate returns the recorded install date.
func (c *Context) InstallDate() (time.Time, bool) {
	t, ok, err := c.FlagRepo.InstallDate()
	if err != nil {
		return time.Time{}, false
	}
	return t, ok
}

// StatusView collects the state reported by the status command.
func (c *Context) StatusView() (*output.StatusView, error) {
	state, err := c.PromptRepo.Load()
	if err != nil {
		return nil, err
	}
	activity, err := c.ActivityRepo.Get()
	if err != nil {
		return nil, err
	}
	installed, ok := c.InstallDate()

	return &output.StatusView{
		Now:                 c.now(),
		InstallDate:         installed,
		Installed:           ok,
		OnboardingCompleted: c.Onboarding.IsOnboardingCompleted(),
		DockPromptAvailable: c.Config.Prompt.DockPromptAvailable,
		Eligibility:         c.Coordinator.EvaluatePromptEligibility(),
		State:               state,
		Activity:            activity,
		InactiveDays:        prompt.InactiveDays(activity, c.Calendar),
		Settings:            c.Flags.PromptSettings(),
	}, nil
}

// Close closes the runtime context and releases resources.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter for the context.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.IsJSON()
}
