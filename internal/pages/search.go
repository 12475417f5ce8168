package pages

import "strings"

// containsFold is the case-insensitive substring match used by every page's
// search box.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
