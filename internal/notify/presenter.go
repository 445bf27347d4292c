package notify

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// InactiveFeedbackNotification is shown after the inactive-user modal is
// dismissed.
func InactiveFeedbackNotification(at time.Time) *model.Notification {
	return model.NewNotification(
		model.NotifyInactiveFeedback,
		"Welcome back",
		"Thanks for letting us know. You can set the browser as default or add it to the dock at any time from settings.",
		at,
	)
}

// PromptDueNotification announces a prompt found by a background check.
func PromptDueNotification(p model.PromptType, e model.PromptEligibility, at time.Time) *model.Notification {
	return model.NewNotification(
		model.NotifyPromptDue,
		p.Label(),
		e.Label()+" to get quick access to the browser.",
		at,
	).WithField("Prompt", string(p)).WithField("Eligibility", string(e))
}

// ConsolePresenter writes notifications to a terminal.
type ConsolePresenter struct {
	w     io.Writer
	now   func() time.Time
	title lipgloss.Style
	body  lipgloss.Style
	field lipgloss.Style
}

// NewConsolePresenter creates a presenter writing to w.
func NewConsolePresenter(w io.Writer, now func() time.Time) *ConsolePresenter {
	if now == nil {
		now = time.Now
	}
	return &ConsolePresenter{
		w:     w,
		now:   now,
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		body:  lipgloss.NewStyle().PaddingLeft(2),
		field: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("8")),
	}
}

// ShowInactiveUserFeedback prints the inactive-user feedback notification.
func (p *ConsolePresenter) ShowInactiveUserFeedback() {
	p.Present(InactiveFeedbackNotification(p.now()))
}

// Present prints a notification.
func (p *ConsolePresenter) Present(n *model.Notification) {
	fmt.Fprintln(p.w, p.title.Render(n.Title))
	fmt.Fprintln(p.w, p.body.Render(n.Message))
	keys := make([]string, 0, len(n.Fields))
	for k := range n.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(p.w, p.field.Render(k+": "+n.Fields[k]))
	}
}

// WebhookPresenter posts notifications to a webhook URL.
type WebhookPresenter struct {
	url       string
	client    *HTTPClient
	formatter Formatter
	now       func() time.Time
}

// NewWebhookPresenter creates a presenter for url, choosing the payload
// format from the URL host.
func NewWebhookPresenter(url string, client *HTTPClient, now func() time.Time) *WebhookPresenter {
	if now == nil {
		now = time.Now
	}
	return &WebhookPresenter{
		url:       url,
		client:    client,
		formatter: FormatterForURL(url),
		now:       now,
	}
}

// ShowInactiveUserFeedback posts the inactive-user feedback notification.
func (p *WebhookPresenter) ShowInactiveUserFeedback() {
	p.Present(InactiveFeedbackNotification(p.now()))
}

// Present posts a notification, logging delivery errors.
func (p *WebhookPresenter) Present(n *model.Notification) {
	if err := p.Send(context.Background(), n); err != nil {
		logging.Warn("failed to deliver notification",
			logging.KeyPresenter, "webhook",
			"url", logging.MaskURL(p.url),
			logging.KeyError, err)
	}
}

// Send formats and posts a notification.
func (p *WebhookPresenter) Send(ctx context.Context, n *model.Notification) error {
	payload, err := p.formatter.Format(n)
	if err != nil {
		return fmt.Errorf("failed to format notification: %w", err)
	}
	result := p.client.Send(ctx, p.url, p.formatter.ContentType(), payload)
	if result.Error != nil {
		return result.Error
	}
	logging.DebugLog("notification delivered",
		logging.KeyPresenter, "webhook",
		logging.KeyStatus, result.StatusCode,
		"attempts", result.Attempts)
	return nil
}

// Presenter shows notifications.
type Presenter interface {
	ShowInactiveUserFeedback()
	Present(n *model.Notification)
}

// MultiPresenter fans a notification out to several presenters.
type MultiPresenter []Presenter

// ShowInactiveUserFeedback calls every presenter in order.
func (m MultiPresenter) ShowInactiveUserFeedback() {
	for _, p := range m {
		p.ShowInactiveUserFeedback()
	}
}

// Present passes n to every presenter in order.
func (m MultiPresenter) Present(n *model.Notification) {
	for _, p := range m {
		p.Present(n)
	}
}
