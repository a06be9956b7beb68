package smartdisplay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adsexamples/internal/domain/googleads"
)

// AdsClient is the part of the Google Ads API the pipeline calls
type AdsClient interface {
	MutateCampaignBudgets(ctx context.Context, customerID string, ops []googleads.CampaignBudgetOperation) (*googleads.MutateResponse, error)
	MutateCampaigns(ctx context.Context, customerID string, ops []googleads.CampaignOperation) (*googleads.MutateResponse, error)
	MutateAdGroups(ctx context.Context, customerID string, ops []googleads.AdGroupOperation) (*googleads.MutateResponse, error)
	MutateAssets(ctx context.Context, customerID string, ops []googleads.AssetOperation) (*googleads.MutateResponse, error)
	MutateAdGroupAds(ctx context.Context, customerID string, ops []googleads.AdGroupAdOperation) (*googleads.MutateResponse, error)
}

// AssetSource tells where an image asset resource name came from
type AssetSource string

const (
	AssetSourceExisting AssetSource = "existing"
	AssetSourceCached   AssetSource = "cached"
	AssetSourceUploaded AssetSource = "uploaded"
)

// AssetResult is the resource name of an image asset and how it was obtained
type AssetResult struct {
	ResourceName string
	Source       AssetSource
}

// Request holds the inputs of one pipeline run. Empty image resource names
// mean the image is uploaded (or taken from the cache).
type Request struct {
	CustomerID                       string
	MarketingImageResourceName       string
	SquareMarketingImageResourceName string
	MarketingImage                   ImageSpec
	SquareMarketingImage             ImageSpec
}

// Result holds every resource name the pipeline created or reused
type Result struct {
	BudgetResourceName    string
	CampaignResourceName  string
	AdGroupResourceName   string
	MarketingImage        AssetResult
	SquareMarketingImage  AssetResult
	AdGroupAdResourceName string
}

// Service creates a Smart Display campaign with a responsive display ad
type Service interface {
	Run(ctx context.Context, req Request) (*Result, error)
	CreateBudget(ctx context.Context, customerID string) (string, error)
	CreateCampaign(ctx context.Context, customerID, budgetResourceName string) (string, error)
	CreateAdGroup(ctx context.Context, customerID, campaignResourceName string) (string, error)
	UploadImageAsset(ctx context.Context, customerID string, spec ImageSpec) (AssetResult, error)
	CreateResponsiveDisplayAd(ctx context.Context, customerID, adGroupResourceName, marketingImage, squareMarketingImage string) (string, error)
}

type service struct {
	client AdsClient
	images googleads.ImageSource
	assets googleads.AssetRepository
	log    *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewService creates a new Smart Display service. assets may be nil, in
// which case every image without an explicit resource name is uploaded.
func NewService(client AdsClient, images googleads.ImageSource, assets googleads.AssetRepository, log *zap.Logger) Service {
	return &service{
		client: client,
		images: images,
		assets: assets,
		log:    log,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

func (s *service) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{}
	var err error

	if res.BudgetResourceName, err = s.CreateBudget(ctx, req.CustomerID); err != nil {
		return res, err
	}
	if res.CampaignResourceName, err = s.CreateCampaign(ctx, req.CustomerID, res.BudgetResourceName); err != nil {
		return res, err
	}
	if res.AdGroupResourceName, err = s.CreateAdGroup(ctx, req.CustomerID, res.CampaignResourceName); err != nil {
		return res, err
	}
	if res.MarketingImage, err = s.imageAsset(ctx, req.CustomerID, req.MarketingImageResourceName, specOrDefault(req.MarketingImage, MarketingImage)); err != nil {
		return res, err
	}
	if res.SquareMarketingImage, err = s.imageAsset(ctx, req.CustomerID, req.SquareMarketingImageResourceName, specOrDefault(req.SquareMarketingImage, SquareMarketingImage)); err != nil {
		return res, err
	}
	if res.AdGroupAdResourceName, err = s.CreateResponsiveDisplayAd(ctx, req.CustomerID, res.AdGroupResourceName,
		res.MarketingImage.ResourceName, res.SquareMarketingImage.ResourceName); err != nil {
		return res, err
	}

	return res, nil
}

func (s *service) CreateBudget(ctx context.Context, customerID string) (string, error) {
	op := NewBudgetOperation(s.newID())
	resp, err := s.client.MutateCampaignBudgets(ctx, customerID, []googleads.CampaignBudgetOperation{op})
	return s.created("budget", resp, err)
}

func (s *service) CreateCampaign(ctx context.Context, customerID, budgetResourceName string) (string, error) {
	op := NewCampaignOperation(s.newID(), budgetResourceName, s.now())
	resp, err := s.client.MutateCampaigns(ctx, customerID, []googleads.CampaignOperation{op})
	return s.created("smart display campaign", resp, err)
}

func (s *service) CreateAdGroup(ctx context.Context, customerID, campaignResourceName string) (string, error) {
	op := NewAdGroupOperation(s.newID(), campaignResourceName)
	resp, err := s.client.MutateAdGroups(ctx, customerID, []googleads.AdGroupOperation{op})
	return s.created("ad group", resp, err)
}

// UploadImageAsset downloads spec.URL and creates an image asset from it,
// unless the asset cache already knows the same bytes for this customer.
func (s *service) UploadImageAsset(ctx context.Context, customerID string, spec ImageSpec) (AssetResult, error) {
	img, err := s.images.Fetch(ctx, spec.URL)
	if err != nil {
		return AssetResult{}, err
	}
	fingerprint := img.Fingerprint()

	if s.assets != nil {
		cached, err := s.assets.Find(ctx, customerID, fingerprint)
		switch {
		case err == nil:
			s.log.Info("Reusing cached image asset",
				zap.String("resource_name", cached.ResourceName),
				zap.String("url", spec.URL))
			return AssetResult{ResourceName: cached.ResourceName, Source: AssetSourceCached}, nil
		case !errors.Is(err, googleads.ErrAssetNotFound):
			s.log.Warn("Asset cache lookup failed", zap.Error(err))
		}
	}

	op := NewImageAssetOperation(img, spec)
	resp, err := s.client.MutateAssets(ctx, customerID, []googleads.AssetOperation{op})
	name, err := s.created("image asset", resp, err)
	if err != nil {
		return AssetResult{}, err
	}

	if s.assets != nil {
		err := s.assets.Save(ctx, &googleads.CachedAsset{
			CustomerID:   customerID,
			Fingerprint:  fingerprint,
			ResourceName: name,
			SourceURL:    spec.URL,
		})
		if err != nil {
			s.log.Warn("Failed to cache image asset", zap.String("resource_name", name), zap.Error(err))
		}
	}

	return AssetResult{ResourceName: name, Source: AssetSourceUploaded}, nil
}

func (s *service) CreateResponsiveDisplayAd(ctx context.Context, customerID, adGroupResourceName, marketingImage, squareMarketingImage string) (string, error) {
	op := NewResponsiveDisplayAdOperation(adGroupResourceName, marketingImage, squareMarketingImage)
	resp, err := s.client.MutateAdGroupAds(ctx, customerID, []googleads.AdGroupAdOperation{op})
	return s.created("responsive display ad", resp, err)
}

func (s *service) imageAsset(ctx context.Context, customerID, existing string, spec ImageSpec) (AssetResult, error) {
	if existing != "" {
		s.log.Info("Using existing image asset", zap.String("resource_name", existing))
		return AssetResult{ResourceName: existing, Source: AssetSourceExisting}, nil
	}
	return s.UploadImageAsset(ctx, customerID, spec)
}

func (s *service) created(kind string, resp *googleads.MutateResponse, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", kind, err)
	}
	name, err := resp.FirstResourceName()
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", kind, err)
	}
	s.log.Info("Created "+kind, zap.String("resource_name", name))
	return name, nil
}

// specOrDefault fills the unset fields of spec from fallback
func specOrDefault(spec, fallback ImageSpec) ImageSpec {
	if spec.URL == "" {
		spec.URL = fallback.URL
	}
	if spec.Width == 0 {
		spec.Width = fallback.Width
	}
	if spec.Height == 0 {
		spec.Height = fallback.Height
	}
	return spec
}
