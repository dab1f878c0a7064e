// Package commit holds pure helpers for commit hash references.
package commit

import (
	"regexp"
	"strings"
)

// MinRefLength and MaxRefLength bound the accepted abbreviated hash lengths.
const (
	MinRefLength = 4
	MaxRefLength = 64
	ShortLength  = 8
)

var hexRef = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// IsHashRef reports whether ref looks like a (possibly abbreviated) object name.
func IsHashRef(ref string) bool {
	if len(ref) < MinRefLength || len(ref) > MaxRefLength {
		return false
	}
	return hexRef.MatchString(ref)
}

// Normalize lower-cases and trims a hash reference.
func Normalize(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

// Short returns the display form of a hash.
func Short(hash string) string {
	if len(hash) > ShortLength {
		return hash[:ShortLength]
	}
	return hash
}

// CollectRefs merges hash lists into one de-duplicated list in first-seen order.
func CollectRefs(lists ...[]string) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, list := range lists {
		for _, ref := range list {
			key := Normalize(ref)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

// Summary returns the first non-empty line of a commit message.
func Summary(message string) string {
	for _, line := range strings.Split(message, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
