package tools

import (
	"strings"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/textnorm"
)

// Estimate is a delivery estimate for a destination.
type Estimate struct {
	Method  string `json:"method"`
	MinDays int    `json:"minDays"`
	MaxDays int    `json:"maxDays"`
	Note    string `json:"note,omitempty"`
}

// ShippingEstimate looks up the delivery estimate for free-text
// destination input. The "us" region is preferred, else the first
// region in dataset order. The region's default method supplies the
// baseline (falling back to the first method when the default id does
// not resolve); the first override whose state appears in the
// normalized destination replaces the method and day range, then the
// scan stops — first match, not best match. An override's missing day
// fields fall back to its method's own range. The shipping-wide
// final-answer note takes precedence over the method note. ok is
// false only when no region or no method exists at all.
func ShippingEstimate(destination string, snap *dataset.Snapshot) (Estimate, bool) {
	if len(snap.Shipping.Regions) == 0 {
		return Estimate{}, false
	}

	region := snap.Shipping.Regions[0]
	for _, r := range snap.Shipping.Regions {
		if r.RegionID == "us" {
			region = r
			break
		}
	}

	method, ok := snap.MethodByID(region.DefaultMethod)
	if !ok {
		if len(snap.Shipping.Methods) == 0 {
			return Estimate{}, false
		}
		method = snap.Shipping.Methods[0]
	}
	minDays, maxDays := method.MinDays, method.MaxDays

	normalized := textnorm.Normalize(destination)
	for _, override := range region.Overrides {
		if !strings.Contains(normalized, textnorm.Normalize(override.State)) {
			continue
		}
		if m, ok := snap.MethodByID(override.Method); ok {
			method = m
		}
		if override.MinDays != nil {
			minDays = *override.MinDays
		} else {
			minDays = method.MinDays
		}
		if override.MaxDays != nil {
			maxDays = *override.MaxDays
		} else {
			maxDays = method.MaxDays
		}
		break
	}

	note := snap.Shipping.CommonAnswers.FinalSource
	if note == "" {
		note = method.Note
	}

	return Estimate{Method: method.Name, MinDays: minDays, MaxDays: maxDays, Note: note}, true
}
