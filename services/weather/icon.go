// File: services/weather/icon.go
package weather

import "strings"

// iconKeywords maps response keywords to decorative icons. Ordered so the
// more specific conditions win.
var iconKeywords = []struct {
	keywords []string
	icon     string
}{
	{[]string{"thunder", "storm", "lightning"}, "storm"},
	{[]string{"snow", "sleet", "hail"}, "snow"},
	{[]string{"rain", "drizzle", "shower", "wet"}, "rain"},
	{[]string{"wind", "gust", "breezy"}, "wind"},
	{[]string{"cloud", "overcast", "grey", "gray"}, "cloud"},
	{[]string{"sun", "clear", "bright", "warm"}, "sun"},
}

// PickIcon selects a decorative icon by keyword search over the assistant's
// response text.
func PickIcon(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range iconKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.icon
			}
		}
	}
	return "partly-cloudy"
}
