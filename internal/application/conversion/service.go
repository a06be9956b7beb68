package conversion

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"adsexamples/internal/domain/googleads"
)

// DefaultCurrencyCode is used for restatements when no currency is given
const DefaultCurrencyCode = "USD"

// AdsClient is the part of the Google Ads API the uploader calls
type AdsClient interface {
	UploadConversionAdjustments(ctx context.Context, customerID string, adjustments []googleads.ConversionAdjustment, partialFailure bool) (*googleads.UploadConversionAdjustmentsResponse, error)
}

// Request describes one adjustment of an existing conversion
type Request struct {
	CustomerID         string
	ConversionActionID string
	Gclid              string
	AdjustmentType     string
	ConversionTime     string
	AdjustmentTime     string
	// RestatementValue is ignored for retractions
	RestatementValue *decimal.Decimal
	CurrencyCode     string
}

// Service uploads conversion adjustments
type Service interface {
	Upload(ctx context.Context, req Request) (*googleads.ConversionAdjustmentResult, error)
}

type service struct {
	client AdsClient
	log    *zap.Logger
}

// NewService creates a new conversion adjustment service
func NewService(client AdsClient, log *zap.Logger) Service {
	return &service{client: client, log: log}
}

// ParseAdjustmentType maps "retraction" or "restatement", in any case, to
// the adjustment type enum.
func ParseAdjustmentType(s string) (googleads.ConversionAdjustmentType, error) {
	switch strings.ToLower(s) {
	case "retraction":
		return googleads.ConversionAdjustmentTypeRetraction, nil
	case "restatement":
		return googleads.ConversionAdjustmentTypeRestatement, nil
	default:
		return "", fmt.Errorf("%w: %q", googleads.ErrInvalidAdjustmentType, s)
	}
}

// BuildAdjustment builds the adjustment record. The restatement value is
// only attached to restatements that carry a value.
func BuildAdjustment(req Request, adjustmentType googleads.ConversionAdjustmentType) googleads.ConversionAdjustment {
	adj := googleads.ConversionAdjustment{
		ConversionAction:   googleads.ConversionActionPath(req.CustomerID, req.ConversionActionID),
		AdjustmentType:     adjustmentType,
		AdjustmentDateTime: req.AdjustmentTime,
		GclidDateTimePair: &googleads.GclidDateTimePair{
			Gclid:              req.Gclid,
			ConversionDateTime: req.ConversionTime,
		},
	}

	if req.RestatementValue != nil && adjustmentType == googleads.ConversionAdjustmentTypeRestatement {
		currency := req.CurrencyCode
		if currency == "" {
			currency = DefaultCurrencyCode
		}
		value, _ := req.RestatementValue.Float64()
		adj.RestatementValue = &googleads.RestatementValue{
			AdjustedValue: value,
			CurrencyCode:  currency,
		}
	}

	return adj
}

func (s *service) Upload(ctx context.Context, req Request) (*googleads.ConversionAdjustmentResult, error) {
	adjustmentType, err := ParseAdjustmentType(req.AdjustmentType)
	if err != nil {
		return nil, err
	}
	if err := googleads.ValidateResourceID(req.ConversionActionID); err != nil {
		return nil, err
	}

	adj := BuildAdjustment(req, adjustmentType)
	resp, err := s.client.UploadConversionAdjustments(ctx, req.CustomerID, []googleads.ConversionAdjustment{adj}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to upload conversion adjustment: %w", err)
	}
	if pf := resp.PartialFailure(); pf != nil {
		return nil, pf
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("failed to upload conversion adjustment: %w", googleads.ErrEmptyResults)
	}

	result := &resp.Results[0]
	s.log.Info("Uploaded conversion adjustment",
		zap.String("conversion_action", result.ConversionAction),
		zap.String("adjustment_type", string(adjustmentType)))
	return result, nil
}
