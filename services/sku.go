package services

import "strings"

// SplitSKU decomposes a composite SKU of the form "BASE+ADDON1+ADDON2" into
// its base code and the addon codes in their original order. Empty segments
// from consecutive or trailing separators are dropped, so "A++B" yields
// ("A", ["B"]) and "A+" yields ("A", nil).
func SplitSKU(skuFull string) (string, []string) {
	var parts []string
	for _, p := range strings.Split(skuFull, "+") {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}

	base := strings.TrimSpace(parts[0])
	var addons []string
	for _, p := range parts[1:] {
		addons = append(addons, strings.TrimSpace(p))
	}
	return base, addons
}
