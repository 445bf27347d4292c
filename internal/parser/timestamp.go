// Package parser turns CLI input into times and settings values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// TimestampResult holds the parsed timestamp and any error.
type TimestampResult struct {
	Time  time.Time
	Error error
}

// offsetRegex matches day offsets like "+14d", "-3d" or "+2w".
var offsetRegex = regexp.MustCompile(`(?i)^([+-])(\d+)\s*([dw])$`)

// ParseTimestamp parses a natural language timestamp relative to now.
// "now" and the empty string return now; "+Nd" and "+Nw" shift by whole
// calendar days.
func ParseTimestamp(input string, now time.Time) TimestampResult {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return TimestampResult{Time: now}
	}

	if match := offsetRegex.FindStringSubmatch(input); match != nil {
		n, err := strconv.Atoi(match[2])
		if err != nil {
			return TimestampResult{Error: NewTimestampError(input)}
		}
		if match[1] == "-" {
			n = -n
		}
		if strings.EqualFold(match[3], "w") {
			n *= 7
		}
		return TimestampResult{Time: now.AddDate(0, 0, n)}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return TimestampResult{Error: NewTimestampError(input)}
	}
	return TimestampResult{Time: result.Time}
}
