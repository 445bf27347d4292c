package prompt

import (
	"strconv"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// Pixel names.
const (
	PixelPopoverImpression = "m_default_browser_dock_popover_impression"
	PixelPopoverConfirm    = "m_default_browser_dock_popover_confirm"
	PixelPopoverClose      = "m_default_browser_dock_popover_close"

	PixelBannerImpression    = "m_default_browser_dock_banner_impression"
	PixelBannerConfirm       = "m_default_browser_dock_banner_confirm"
	PixelBannerClose         = "m_default_browser_dock_banner_close"
	PixelBannerNeverAskAgain = "m_default_browser_dock_banner_never_ask_again"

	PixelInactiveModalImpression = "m_default_browser_dock_inactive_modal_impression"
	PixelInactiveModalConfirm    = "m_default_browser_dock_inactive_modal_confirm"
	PixelInactiveModalDismissed  = "m_default_browser_dock_inactive_modal_dismissed"
)

// Pixel parameter names.
const (
	ParamContentType          = "contentType"
	ParamNumberOfBannersShown = "numberOfBannersShown"
)

// maxBannerBucket is the first occurrence count reported as "N+".
const maxBannerBucket = 10

// BannerOccurrenceBucket maps a banner count to its telemetry bucket:
// "1" through "9", then "10+". Counts below 1 report as "1".
func BannerOccurrenceBucket(n int) string {
	if n < 1 {
		n = 1
	}
	if n >= maxBannerBucket {
		return strconv.Itoa(maxBannerBucket) + "+"
	}
	return strconv.Itoa(n)
}

type pixelEvent struct {
	name      string
	frequency model.PixelFrequency
	params    map[string]string
}

func contentParams(e model.PromptEligibility) map[string]string {
	params := map[string]string{}
	if e != model.EligibilityNone {
		params[ParamContentType] = string(e)
	}
	return params
}

func bannerParams(e model.PromptEligibility, occurrences int) map[string]string {
	params := contentParams(e)
	params[ParamNumberOfBannersShown] = BannerOccurrenceBucket(occurrences)
	return params
}

func impressionPixel(p model.PromptType, e model.PromptEligibility, occurrences int) (pixelEvent, bool) {
	switch p {
	case model.PromptPopover:
		return pixelEvent{PixelPopoverImpression, model.FrequencyStandard, contentParams(e)}, true
	case model.PromptBanner:
		return pixelEvent{PixelBannerImpression, model.FrequencyStandard, bannerParams(e, occurrences)}, true
	case model.PromptInactive:
		return pixelEvent{PixelInactiveModalImpression, model.FrequencyUnique, contentParams(e)}, true
	}
	return pixelEvent{}, false
}

func confirmPixel(p model.PromptType, e model.PromptEligibility, occurrences int) (pixelEvent, bool) {
	switch p {
	case model.PromptPopover:
		return pixelEvent{PixelPopoverConfirm, model.FrequencyStandard, contentParams(e)}, true
	case model.PromptBanner:
		return pixelEvent{PixelBannerConfirm, model.FrequencyStandard, bannerParams(e, occurrences)}, true
	case model.PromptInactive:
		return pixelEvent{PixelInactiveModalConfirm, model.FrequencyUnique, contentParams(e)}, true
	}
	return pixelEvent{}, false
}
