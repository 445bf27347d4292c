// Package validate checks configuration values before they reach the
// collaborators that use them.
package validate

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/manav03panchal/dockprompt/internal/errors"
)

const (
	// MaxURLLength is the maximum length for a URL.
	MaxURLLength = 2048
	// MaxDesktopFileLength is the maximum length for a desktop entry name.
	MaxDesktopFileLength = 255
)

// desktopFileRegex matches desktop entry IDs such as "org.example.Browser.desktop".
var desktopFileRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*\.desktop$`)

// URL validates an endpoint URL for webhooks and pixel delivery.
// External hosts must use https; http is allowed for localhost.
func URL(rawURL string) error {
	if rawURL == "" {
		return errors.NewUserError("URL cannot be empty", "Provide a valid URL")
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserError("URL too long", "URLs must be 2048 characters or fewer")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL format",
			"Provide a valid URL starting with https://", err)
	}

	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL scheme",
			"URLs must use https:// (or http:// for localhost)", nil)
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL: missing hostname",
			"Provide a valid URL like https://example.com/hook", nil)
	}

	isLocalhost := hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1"
	if parsed.Scheme == "http" && !isLocalhost {
		return errors.NewUserErrorWithField("url", rawURL,
			"HTTP not allowed for external URLs",
			"Use https://. HTTP is only allowed for localhost.", nil)
	}

	// Literal addresses only; names are not resolved.
	if ip := net.ParseIP(hostname); ip != nil && !isLocalhost && isInternalIP(ip) {
		return errors.NewUserErrorWithField("url", rawURL,
			"Internal IP addresses not allowed",
			"Endpoints must point to external services or localhost", nil)
	}
	return nil
}

var privateNetworks = func() []*net.IPNet {
	var nets []*net.IPNet
	for _, cidr := range []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"fc00::/7",
		"fe80::/10",
		"::1/128",
	} {
		_, n, err := net.ParseCIDR(cidr)
		if err == nil {
			nets = append(nets, n)
		}
	}
	return nets
}()

// isInternalIP checks if an IP is in a private/internal range.
func isInternalIP(ip net.IP) bool {
	for _, n := range privateNetworks {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// DesktopFile validates a desktop entry name passed to xdg-settings.
func DesktopFile(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Desktop file cannot be empty", "Provide a name like example-browser.desktop")
	}
	if len(name) > MaxDesktopFileLength {
		return errors.NewUserErrorWithField("desktop_file", name,
			"Desktop file name too long",
			"Desktop file names must be 255 characters or fewer", nil)
	}
	if !desktopFileRegex.MatchString(name) {
		return errors.NewUserErrorWithField("desktop_file", name,
			"Invalid desktop file name",
			"Use a bare file name ending in .desktop, without directories", nil)
	}
	return nil
}
