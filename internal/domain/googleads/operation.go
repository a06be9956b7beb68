package googleads

import "net/http"

// CampaignBudgetOperation creates a campaign budget
type CampaignBudgetOperation struct {
	Create *CampaignBudget `json:"create,omitempty"`
}

// CampaignOperation creates a campaign
type CampaignOperation struct {
	Create *Campaign `json:"create,omitempty"`
}

// AdGroupOperation creates an ad group
type AdGroupOperation struct {
	Create *AdGroup `json:"create,omitempty"`
}

// AssetOperation creates an asset
type AssetOperation struct {
	Create *Asset `json:"create,omitempty"`
}

// AdGroupAdOperation creates an ad group ad
type AdGroupAdOperation struct {
	Create *AdGroupAd `json:"create,omitempty"`
}

// CampaignCriterionOperation updates a campaign criterion. UpdateMask is a
// comma separated list of camelCase field paths.
type CampaignCriterionOperation struct {
	UpdateMask string             `json:"updateMask,omitempty"`
	Update     *CampaignCriterion `json:"update,omitempty"`
}

// MutateRequest is the body of every <collection>:mutate call
type MutateRequest[T any] struct {
	Operations     []T  `json:"operations"`
	PartialFailure bool `json:"partialFailure,omitempty"`
	ValidateOnly   bool `json:"validateOnly,omitempty"`
}

// MutateResult is the result of a single mutate operation
type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

// MutateResponse is the response of every <collection>:mutate call
type MutateResponse struct {
	Results             []MutateResult `json:"results"`
	PartialFailureError *Status        `json:"partialFailureError,omitempty"`
	RequestID           string         `json:"-"`
}

// FirstResourceName returns results[0].resourceName
func (r *MutateResponse) FirstResourceName() (string, error) {
	if r == nil || len(r.Results) == 0 || r.Results[0].ResourceName == "" {
		return "", ErrEmptyResults
	}
	return r.Results[0].ResourceName, nil
}

// UploadConversionAdjustmentsRequest is the body of customers/{id}:uploadConversionAdjustments
type UploadConversionAdjustmentsRequest struct {
	ConversionAdjustments []ConversionAdjustment `json:"conversionAdjustments"`
	PartialFailure        bool                   `json:"partialFailure"`
	ValidateOnly          bool                   `json:"validateOnly,omitempty"`
}

// UploadConversionAdjustmentsResponse is the response of an adjustment upload
type UploadConversionAdjustmentsResponse struct {
	PartialFailureError *Status                      `json:"partialFailureError,omitempty"`
	Results             []ConversionAdjustmentResult `json:"results"`
	RequestID           string                       `json:"-"`
}

// PartialFailure returns the partial failure reported inside a successful
// response, or nil.
func (r *UploadConversionAdjustmentsResponse) PartialFailure() *APIError {
	if r == nil || r.PartialFailureError == nil || r.PartialFailureError.Code == 0 {
		return nil
	}
	return NewAPIError(http.StatusOK, r.RequestID, r.PartialFailureError)
}
