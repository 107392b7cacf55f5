package uptime

import (
	"regexp"
	"strconv"
	"strings"
)

const stillRunningMarker = "still running"

var (
	bootMarkerRe = regexp.MustCompile(`reboot\s+system boot`)
	durationRe   = regexp.MustCompile(`\((\d{2}):(\d{2})\)`)
)

// Entry is one reboot session attributed to a day.
type Entry struct {
	Label   string
	Minutes int
}

// ParseHistory extracts reboot sessions for the given labels from `last -x`
// style text. Lines that do not describe a finished reboot session inside
// the window are skipped.
func ParseHistory(text string, labels []string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if entry, ok := classifyLine(line, labels); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func classifyLine(line string, labels []string) (Entry, bool) {
	// An open session has no duration yet; its truncated record must not
	// be read as a finished one.
	if strings.Contains(line, stillRunningMarker) {
		return Entry{}, false
	}

	marker := bootMarkerRe.FindStringIndex(line)
	if marker == nil {
		return Entry{}, false
	}
	rest := line[marker[1]:]

	durations := durationRe.FindAllStringSubmatchIndex(rest, -1)
	if len(durations) == 0 {
		return Entry{}, false
	}

	// The last duration on the line wins, and the label is the right-most
	// one that still ends before it.
	d := durations[len(durations)-1]
	label, ok := lastLabelBefore(rest[:d[0]], labels)
	if !ok {
		return Entry{}, false
	}

	hours, _ := strconv.Atoi(rest[d[2]:d[3]])
	minutes, _ := strconv.Atoi(rest[d[4]:d[5]])
	return Entry{Label: label, Minutes: hours*60 + minutes}, true
}

func lastLabelBefore(s string, labels []string) (string, bool) {
	best, bestPos := "", -1
	for _, label := range labels {
		if label == "" {
			continue
		}
		if pos := strings.LastIndex(s, label); pos > bestPos {
			best, bestPos = label, pos
		}
	}
	return best, bestPos >= 0
}
