package criterion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adsexamples/internal/domain/googleads"
)

// DefaultBidModifier is used when no bid modifier is given
const DefaultBidModifier = 1.5

// bidModifierMask is the update mask for a bid modifier change
const bidModifierMask = "bidModifier"

// AdsClient is the part of the Google Ads API the updater calls
type AdsClient interface {
	MutateCampaignCriteria(ctx context.Context, customerID string, ops []googleads.CampaignCriterionOperation) (*googleads.MutateResponse, error)
}

// Request identifies the criterion to update and its new bid modifier
type Request struct {
	CustomerID  string
	CampaignID  string
	CriterionID string
	BidModifier float64
}

// Service updates campaign criteria
type Service interface {
	UpdateBidModifier(ctx context.Context, req Request) (string, error)
}

type service struct {
	client AdsClient
	log    *zap.Logger
}

// NewService creates a new campaign criterion service
func NewService(client AdsClient, log *zap.Logger) Service {
	return &service{client: client, log: log}
}

// NewBidModifierOperation builds the update operation for the criterion
func NewBidModifierOperation(req Request) googleads.CampaignCriterionOperation {
	return googleads.CampaignCriterionOperation{
		UpdateMask: bidModifierMask,
		Update: &googleads.CampaignCriterion{
			ResourceName: googleads.CampaignCriterionPath(req.CustomerID, req.CampaignID, req.CriterionID),
			BidModifier:  req.BidModifier,
		},
	}
}

func (s *service) UpdateBidModifier(ctx context.Context, req Request) (string, error) {
	if err := googleads.ValidateResourceID(req.CampaignID); err != nil {
		return "", err
	}
	if err := googleads.ValidateResourceID(req.CriterionID); err != nil {
		return "", err
	}

	op := NewBidModifierOperation(req)
	resp, err := s.client.MutateCampaignCriteria(ctx, req.CustomerID, []googleads.CampaignCriterionOperation{op})
	if err != nil {
		return "", fmt.Errorf("failed to update campaign criterion: %w", err)
	}
	name, err := resp.FirstResourceName()
	if err != nil {
		return "", fmt.Errorf("failed to update campaign criterion: %w", err)
	}

	s.log.Info("Updated campaign criterion",
		zap.String("resource_name", name),
		zap.Float64("bid_modifier", req.BidModifier))
	return name, nil
}
