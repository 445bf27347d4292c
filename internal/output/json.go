package output

import (
	"time"

	"github.com/manav03panchal/dockprompt/internal/model"
)

// StatusView is everything the status command reports.
type StatusView struct {
	Now                 time.Time
	InstallDate         time.Time
	Installed           bool
	OnboardingCompleted bool
	DockPromptAvailable bool
	Eligibility         model.PromptEligibility
	State               *model.StoredPromptState
	Activity            *model.PromptUserActivity
	InactiveDays        int
	Settings            *model.PromptSettings
}

// CheckResponse is the JSON output of the check command.
type CheckResponse struct {
	Status      string `json:"status"`
	Prompt      string `json:"prompt,omitempty"`
	Eligibility string `json:"eligibility,omitempty"`
	Label       string `json:"label,omitempty"`
}

// NewCheckResponse builds a check response. Status is "due" when a prompt
// was selected and "none" otherwise.
func NewCheckResponse(p model.PromptType, e model.PromptEligibility) *CheckResponse {
	if p == model.PromptNone {
		return &CheckResponse{Status: "none", Eligibility: string(e)}
	}
	return &CheckResponse{
		Status:      "due",
		Prompt:      string(p),
		Eligibility: string(e),
		Label:       e.Label(),
	}
}

// ActionResponse is the JSON output of confirm and dismiss.
type ActionResponse struct {
	Status          string `json:"status"`
	Action          string `json:"action"`
	Prompt          string `json:"prompt"`
	HidePermanently bool   `json:"hide_permanently,omitempty"`
	StatusUpdate    bool   `json:"status_update,omitempty"`
}

// StatusResponse is the JSON output of the status command.
type StatusResponse struct {
	Now                          string                `json:"now"`
	InstallDate                  string                `json:"install_date,omitempty"`
	OnboardingCompleted          bool                  `json:"onboarding_completed"`
	DockPromptAvailable          bool                  `json:"dock_prompt_available"`
	Eligibility                  string                `json:"eligibility"`
	PopoverShownDate             string                `json:"popover_shown_date,omitempty"`
	BannerShownDate              string                `json:"banner_shown_date,omitempty"`
	InactiveModalShownDate       string                `json:"inactive_modal_shown_date,omitempty"`
	IsBannerPermanentlyDismissed bool                  `json:"is_banner_permanently_dismissed"`
	BannerShownOccurrences       int                   `json:"banner_shown_occurrences"`
	LastActiveDate               string                `json:"last_active_date,omitempty"`
	SecondLastActiveDate         string                `json:"second_last_active_date,omitempty"`
	InactiveDays                 int                   `json:"inactive_days"`
	Settings                     *model.PromptSettings `json:"settings"`
}

// NewStatusResponse flattens a StatusView for JSON output.
func NewStatusResponse(v *StatusView) *StatusResponse {
	resp := &StatusResponse{
		Now:                 v.Now.Format(time.RFC3339),
		OnboardingCompleted: v.OnboardingCompleted,
		DockPromptAvailable: v.DockPromptAvailable,
		Eligibility:         string(v.Eligibility),
		InactiveDays:        v.InactiveDays,
		Settings:            v.Settings,
	}
	if v.Installed {
		resp.InstallDate = v.InstallDate.Format(time.RFC3339)
	}
	if s := v.State; s != nil {
		resp.PopoverShownDate = rfc3339(s.PopoverShownAt())
		resp.BannerShownDate = rfc3339(s.BannerShownAt())
		resp.InactiveModalShownDate = rfc3339(s.InactiveModalShownAt())
		resp.IsBannerPermanentlyDismissed = s.IsBannerPermanentlyDismissed
		resp.BannerShownOccurrences = s.BannerShownOccurrences
	}
	if a := v.Activity; a != nil {
		if a.LastActiveDate != nil {
			resp.LastActiveDate = FormatDate(*a.LastActiveDate)
		}
		if a.SecondLastActiveDate != nil {
			resp.SecondLastActiveDate = FormatDate(*a.SecondLastActiveDate)
		}
	}
	return resp
}

// PixelOutput represents a stored pixel in JSON output.
type PixelOutput struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Frequency  string            `json:"frequency"`
	Parameters map[string]string `json:"parameters,omitempty"`
	FiredAt    string            `json:"fired_at"`
}

// PixelsResponse is the JSON output of pixels list.
type PixelsResponse struct {
	Pixels []*PixelOutput `json:"pixels"`
	Count  int            `json:"count"`
}

// NewPixelsResponse builds a pixels list response.
func NewPixelsResponse(records []*model.PixelRecord) *PixelsResponse {
	resp := &PixelsResponse{Pixels: make([]*PixelOutput, 0, len(records)), Count: len(records)}
	for _, r := range records {
		resp.Pixels = append(resp.Pixels, &PixelOutput{
			ID:         r.ID(),
			Name:       r.Name,
			Frequency:  string(r.Frequency),
			Parameters: r.Parameters,
			FiredAt:    r.FiredAt.Format(time.RFC3339),
		})
	}
	return resp
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// NewErrorResponse creates an error response.
func NewErrorResponse(message, suggestion string) *ErrorResponse {
	return &ErrorResponse{Status: "error", Error: message, Suggestion: suggestion}
}

func rfc3339(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.Format(time.RFC3339)
}
