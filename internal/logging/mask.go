package logging

import (
	"net/url"
	"strings"
)

// MaskChar is the character used for masking.
const MaskChar = "*"

// MaskURL keeps the scheme and host of an endpoint and masks the path and
// query, which for webhook URLs usually carry the secret.
func MaskURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.Repeat(MaskChar, 8)
	}
	if u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1" {
		return raw
	}
	masked := u.Scheme + "://" + u.Host
	if u.Path != "" && u.Path != "/" || u.RawQuery != "" {
		masked += "/" + strings.Repeat(MaskChar, 3)
	}
	return masked
}
