package services

// ResolvePrice computes the final price for a composite SKU from the
// pricelist and addon maps, minus the per-row discount.
//
// The base code must exist in the pricelist and every addon code must exist
// in the addon map. Addon resolution is strict all-or-nothing: a single
// unknown addon invalidates the whole row rather than falling back to a
// partial price, so ok is false and nothing should be updated. The discount
// applies once per row regardless of addon count, and the result is clamped
// at zero.
func ResolvePrice(skuFull string, pricelist, addons map[string]int64, discount int64) (int64, bool) {
	base, addonCodes := SplitSKU(skuFull)

	baseKey := normKey(base)
	if baseKey == "" {
		return 0, false
	}
	basePrice, found := pricelist[baseKey]
	if !found {
		return 0, false
	}

	var addonSum int64
	for _, a := range addonCodes {
		key := normKey(a)
		if key == "" {
			continue
		}
		price, found := addons[key]
		if !found {
			return 0, false
		}
		addonSum += price
	}

	final := basePrice + addonSum - discount
	if final < 0 {
		final = 0
	}
	return final, true
}
