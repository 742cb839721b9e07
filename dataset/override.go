package dataset

// ApplyOverride derives a request-scoped Snapshot with the override's
// store identity and support data patched in. A nil override, or one
// whose mode is not "custom", returns the input unchanged (same
// pointer, no copy). Otherwise the result is a deep, fully independent
// copy: mutating it never affects the cached Snapshot.
func ApplyOverride(snap *Snapshot, override *StoreOverride) *Snapshot {
	if override == nil || override.Mode != OverrideModeCustom {
		return snap
	}

	next := snap.clone()

	business := &next.Business
	if override.StoreName != "" {
		business.StoreName = override.StoreName
	}
	if override.StoreDomain != "" {
		business.StoreDomain = override.StoreDomain
	}
	if override.Support != nil {
		business.Support = mergeChannels(business.Support, override.Support)
	}

	next.Pages.Store.Name = business.StoreName
	next.Pages.Store.Domain = business.StoreDomain
	for i := range next.Pages.Pages {
		page := &next.Pages.Pages[i]
		if page.Type == "support" && override.Support != nil {
			page.SupportChannels = mergeChannels(page.SupportChannels, override.Support)
		}
	}

	return next
}

// mergeChannels shallow-merges patch into base key by key, returning a
// fresh map. Base keys survive unless the patch replaces them.
func mergeChannels(base, patch map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
