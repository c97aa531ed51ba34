package types

import "strings"

// Hospital is the seed record behind a recommendation card. Tags are
// stored comma-separated in the hospitals table and split on read.
type Hospital struct {
	ID   string
	Name string
	ETA  string
	Tags []string
	Lat  float64
	Lng  float64
	Type string
}

// SplitTags turns the stored comma-separated tag column into a clean
// ordered slice, dropping empty entries.
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse of SplitTags for writes.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
