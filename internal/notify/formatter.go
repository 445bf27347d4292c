// Package notify presents prompt notifications on the console and to webhooks.
package notify

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// Formatter formats notifications for a specific webhook type.
type Formatter interface {
	// Format converts a notification into the webhook-specific payload.
	Format(n *model.Notification) ([]byte, error)

	// ContentType returns the HTTP Content-Type for the payload.
	ContentType() string
}

// FormatterForURL picks a formatter from the webhook host.
func FormatterForURL(raw string) Formatter {
	u, err := url.Parse(raw)
	if err != nil {
		return &GenericFormatter{}
	}
	host := strings.ToLower(u.Hostname())
	switch {
	case host == "hooks.slack.com":
		return &SlackFormatter{}
	case strings.HasSuffix(host, "discord.com") && strings.HasPrefix(u.Path, "/api/webhooks"):
		return &DiscordFormatter{}
	default:
		return &GenericFormatter{}
	}
}

// GenericFormatter posts the notification as plain JSON.
type GenericFormatter struct{}

type genericPayload struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// Format converts a notification to the generic payload.
func (f *GenericFormatter) Format(n *model.Notification) ([]byte, error) {
	return json.Marshal(genericPayload{
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Fields:    n.Fields,
		Timestamp: n.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

// ContentType returns the content type for generic webhooks.
func (f *GenericFormatter) ContentType() string {
	return "application/json"
}

// SlackFormatter formats notifications for Slack incoming webhooks.
type SlackFormatter struct{}

type slackPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks,omitempty"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Format converts a notification to Slack block kit.
func (f *SlackFormatter) Format(n *model.Notification) ([]byte, error) {
	blocks := []slackBlock{
		{Type: "header", Text: &slackText{Type: "plain_text", Text: n.Title}},
		{Type: "section", Text: &slackText{Type: "mrkdwn", Text: n.Message}},
	}
	if len(n.Fields) > 0 {
		section := slackBlock{Type: "section"}
		for _, k := range sortedKeys(n.Fields) {
			section.Fields = append(section.Fields, slackText{
				Type: "mrkdwn",
				Text: "*" + k + "*\n" + n.Fields[k],
			})
		}
		blocks = append(blocks, section)
	}
	return json.Marshal(slackPayload{Text: n.Title, Blocks: blocks})
}

// ContentType returns the content type for Slack webhooks.
func (f *SlackFormatter) ContentType() string {
	return "application/json"
}

// DiscordFormatter formats notifications for Discord webhooks.
type DiscordFormatter struct{}

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Footer      *discordFooter      `json:"footer,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// Format converts a notification to a Discord embed.
func (f *DiscordFormatter) Format(n *model.Notification) ([]byte, error) {
	embed := discordEmbed{
		Title:       n.Title,
		Description: n.Message,
		Timestamp:   n.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
		Footer:      &discordFooter{Text: "dockprompt"},
	}
	for _, k := range sortedKeys(n.Fields) {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: k, Value: n.Fields[k], Inline: true})
	}
	return json.Marshal(discordPayload{Embeds: []discordEmbed{embed}})
}

// ContentType returns the content type for Discord webhooks.
func (f *DiscordFormatter) ContentType() string {
	return "application/json"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
