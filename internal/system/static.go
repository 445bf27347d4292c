package system

// StaticDock reports a fixed dock membership. AddToDock always succeeds.
type StaticDock struct {
	Added bool
}

func (d *StaticDock) IsAddedToDock() bool { return d.Added }

func (d *StaticDock) AddToDock() bool {
	d.Added = true
	return true
}

// StaticBrowser reports a fixed default-browser status.
type StaticBrowser struct {
	Default bool
}

func (b *StaticBrowser) IsDefault() bool { return b.Default }

func (b *StaticBrowser) PresentDefaultBrowserPrompt() error {
	b.Default = true
	return nil
}
