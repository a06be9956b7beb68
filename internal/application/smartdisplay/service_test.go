package smartdisplay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adsexamples/internal/domain/googleads"
)

const testCustomerID = "1234567890"

// MockAdsClient is a mock implementation of AdsClient
type MockAdsClient struct {
	mock.Mock
}

func (m *MockAdsClient) response(args mock.Arguments) (*googleads.MutateResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googleads.MutateResponse), args.Error(1)
}

func (m *MockAdsClient) MutateCampaignBudgets(ctx context.Context, customerID string, ops []googleads.CampaignBudgetOperation) (*googleads.MutateResponse, error) {
	return m.response(m.Called(ctx, customerID, ops))
}

func (m *MockAdsClient) MutateCampaigns(ctx context.Context, customerID string, ops []googleads.CampaignOperation) (*googleads.MutateResponse, error) {
	return m.response(m.Called(ctx, customerID, ops))
}

func (m *MockAdsClient) MutateAdGroups(ctx context.Context, customerID string, ops []googleads.AdGroupOperation) (*googleads.MutateResponse, error) {
	return m.response(m.Called(ctx, customerID, ops))
}

func (m *MockAdsClient) MutateAssets(ctx context.Context, customerID string, ops []googleads.AssetOperation) (*googleads.MutateResponse, error) {
	return m.response(m.Called(ctx, customerID, ops))
}

func (m *MockAdsClient) MutateAdGroupAds(ctx context.Context, customerID string, ops []googleads.AdGroupAdOperation) (*googleads.MutateResponse, error) {
	return m.response(m.Called(ctx, customerID, ops))
}

// MockImageSource is a mock implementation of googleads.ImageSource
type MockImageSource struct {
	mock.Mock
}

func (m *MockImageSource) Fetch(ctx context.Context, url string) (*googleads.Image, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googleads.Image), args.Error(1)
}

// MockAssetRepository is a mock implementation of googleads.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Find(ctx context.Context, customerID, fingerprint string) (*googleads.CachedAsset, error) {
	args := m.Called(ctx, customerID, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googleads.CachedAsset), args.Error(1)
}

func (m *MockAssetRepository) Save(ctx context.Context, asset *googleads.CachedAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func result(name string) *googleads.MutateResponse {
	return &googleads.MutateResponse{Results: []googleads.MutateResult{{ResourceName: name}}}
}

func newTestService(client AdsClient, images googleads.ImageSource, assets googleads.AssetRepository) *service {
	s := NewService(client, images, assets, zap.NewNop()).(*service)
	s.now = func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "fixed-id" }
	return s
}

func TestService_Run_WithExistingImages(t *testing.T) {
	client := new(MockAdsClient)
	images := new(MockImageSource)
	s := newTestService(client, images, nil)

	client.On("MutateCampaignBudgets", mock.Anything, testCustomerID,
		[]googleads.CampaignBudgetOperation{NewBudgetOperation("fixed-id")}).
		Return(result("customers/1234567890/campaignBudgets/1"), nil)
	client.On("MutateCampaigns", mock.Anything, testCustomerID,
		[]googleads.CampaignOperation{NewCampaignOperation("fixed-id", "customers/1234567890/campaignBudgets/1", s.now())}).
		Return(result("customers/1234567890/campaigns/2"), nil)
	client.On("MutateAdGroups", mock.Anything, testCustomerID,
		[]googleads.AdGroupOperation{NewAdGroupOperation("fixed-id", "customers/1234567890/campaigns/2")}).
		Return(result("customers/1234567890/adGroups/3"), nil)
	client.On("MutateAdGroupAds", mock.Anything, testCustomerID,
		[]googleads.AdGroupAdOperation{NewResponsiveDisplayAdOperation(
			"customers/1234567890/adGroups/3", "customers/1234567890/assets/10", "customers/1234567890/assets/11")}).
		Return(result("customers/1234567890/adGroupAds/3~4"), nil)

	res, err := s.Run(context.Background(), Request{
		CustomerID:                       testCustomerID,
		MarketingImageResourceName:       "customers/1234567890/assets/10",
		SquareMarketingImageResourceName: "customers/1234567890/assets/11",
	})

	require.NoError(t, err)
	assert.Equal(t, &Result{
		BudgetResourceName:    "customers/1234567890/campaignBudgets/1",
		CampaignResourceName:  "customers/1234567890/campaigns/2",
		AdGroupResourceName:   "customers/1234567890/adGroups/3",
		MarketingImage:        AssetResult{ResourceName: "customers/1234567890/assets/10", Source: AssetSourceExisting},
		SquareMarketingImage:  AssetResult{ResourceName: "customers/1234567890/assets/11", Source: AssetSourceExisting},
		AdGroupAdResourceName: "customers/1234567890/adGroupAds/3~4",
	}, res)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "MutateAssets", mock.Anything, mock.Anything, mock.Anything)
	images.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestService_Run_UploadsImages(t *testing.T) {
	client := new(MockAdsClient)
	images := new(MockImageSource)
	s := newTestService(client, images, nil)

	marketing := &googleads.Image{URL: MarketingImage.URL, Data: []byte("marketing"), MimeType: googleads.MimeTypeImageJPEG}
	square := &googleads.Image{URL: SquareMarketingImage.URL, Data: []byte("square"), MimeType: googleads.MimeTypeImagePNG}

	client.On("MutateCampaignBudgets", mock.Anything, testCustomerID, mock.Anything).Return(result("budget"), nil)
	client.On("MutateCampaigns", mock.Anything, testCustomerID, mock.Anything).Return(result("campaign"), nil)
	client.On("MutateAdGroups", mock.Anything, testCustomerID, mock.Anything).Return(result("adgroup"), nil)
	images.On("Fetch", mock.Anything, MarketingImage.URL).Return(marketing, nil)
	images.On("Fetch", mock.Anything, SquareMarketingImage.URL).Return(square, nil)
	client.On("MutateAssets", mock.Anything, testCustomerID,
		[]googleads.AssetOperation{NewImageAssetOperation(marketing, MarketingImage)}).
		Return(result("asset-marketing"), nil).Once()
	client.On("MutateAssets", mock.Anything, testCustomerID,
		[]googleads.AssetOperation{NewImageAssetOperation(square, SquareMarketingImage)}).
		Return(result("asset-square"), nil).Once()
	client.On("MutateAdGroupAds", mock.Anything, testCustomerID,
		[]googleads.AdGroupAdOperation{NewResponsiveDisplayAdOperation("adgroup", "asset-marketing", "asset-square")}).
		Return(result("ad"), nil)

	res, err := s.Run(context.Background(), Request{CustomerID: testCustomerID})

	require.NoError(t, err)
	assert.Equal(t, AssetResult{ResourceName: "asset-marketing", Source: AssetSourceUploaded}, res.MarketingImage)
	assert.Equal(t, AssetResult{ResourceName: "asset-square", Source: AssetSourceUploaded}, res.SquareMarketingImage)
	assert.Equal(t, "ad", res.AdGroupAdResourceName)
	client.AssertExpectations(t)
	images.AssertExpectations(t)
}

func TestService_Run_StopsOnFirstFailure(t *testing.T) {
	client := new(MockAdsClient)
	s := newTestService(client, new(MockImageSource), nil)

	apiErr := &googleads.APIError{RequestID: "req-1", Status: "INVALID_ARGUMENT"}
	client.On("MutateCampaignBudgets", mock.Anything, testCustomerID, mock.Anything).Return(result("budget"), nil)
	client.On("MutateCampaigns", mock.Anything, testCustomerID, mock.Anything).Return(nil, apiErr)

	res, err := s.Run(context.Background(), Request{CustomerID: testCustomerID})

	require.Error(t, err)
	var got *googleads.APIError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "budget", res.BudgetResourceName)
	assert.Empty(t, res.CampaignResourceName)
	client.AssertNotCalled(t, "MutateAdGroups", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateBudget_EmptyResults(t *testing.T) {
	client := new(MockAdsClient)
	s := newTestService(client, nil, nil)

	client.On("MutateCampaignBudgets", mock.Anything, testCustomerID, mock.Anything).
		Return(&googleads.MutateResponse{}, nil)

	_, err := s.CreateBudget(context.Background(), testCustomerID)
	assert.ErrorIs(t, err, googleads.ErrEmptyResults)
}

func TestService_UploadImageAsset_CacheHit(t *testing.T) {
	client := new(MockAdsClient)
	images := new(MockImageSource)
	assets := new(MockAssetRepository)
	s := newTestService(client, images, assets)

	img := &googleads.Image{URL: MarketingImage.URL, Data: []byte("same-bytes"), MimeType: googleads.MimeTypeImageJPEG}
	images.On("Fetch", mock.Anything, MarketingImage.URL).Return(img, nil)
	assets.On("Find", mock.Anything, testCustomerID, img.Fingerprint()).
		Return(&googleads.CachedAsset{ResourceName: "customers/1234567890/assets/99"}, nil)

	res, err := s.UploadImageAsset(context.Background(), testCustomerID, MarketingImage)

	require.NoError(t, err)
	assert.Equal(t, AssetResult{ResourceName: "customers/1234567890/assets/99", Source: AssetSourceCached}, res)
	client.AssertNotCalled(t, "MutateAssets", mock.Anything, mock.Anything, mock.Anything)
	assets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_UploadImageAsset_CacheMissSaves(t *testing.T) {
	client := new(MockAdsClient)
	images := new(MockImageSource)
	assets := new(MockAssetRepository)
	s := newTestService(client, images, assets)

	img := &googleads.Image{URL: SquareMarketingImage.URL, Data: []byte("new-bytes"), MimeType: googleads.MimeTypeImagePNG}
	images.On("Fetch", mock.Anything, SquareMarketingImage.URL).Return(img, nil)
	assets.On("Find", mock.Anything, testCustomerID, img.Fingerprint()).Return(nil, googleads.ErrAssetNotFound)
	client.On("MutateAssets", mock.Anything, testCustomerID, mock.Anything).Return(result("customers/1234567890/assets/7"), nil)
	assets.On("Save", mock.Anything, &googleads.CachedAsset{
		CustomerID:   testCustomerID,
		Fingerprint:  img.Fingerprint(),
		ResourceName: "customers/1234567890/assets/7",
		SourceURL:    SquareMarketingImage.URL,
	}).Return(nil)

	res, err := s.UploadImageAsset(context.Background(), testCustomerID, SquareMarketingImage)

	require.NoError(t, err)
	assert.Equal(t, AssetResult{ResourceName: "customers/1234567890/assets/7", Source: AssetSourceUploaded}, res)
	assets.AssertExpectations(t)
}

func TestService_UploadImageAsset_CacheErrorsDoNotFail(t *testing.T) {
	client := new(MockAdsClient)
	images := new(MockImageSource)
	assets := new(MockAssetRepository)
	s := newTestService(client, images, assets)

	img := &googleads.Image{URL: MarketingImage.URL, Data: []byte("bytes")}
	images.On("Fetch", mock.Anything, MarketingImage.URL).Return(img, nil)
	assets.On("Find", mock.Anything, testCustomerID, mock.Anything).Return(nil, errors.New("disk I/O error"))
	client.On("MutateAssets", mock.Anything, testCustomerID, mock.Anything).Return(result("asset"), nil)
	assets.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk I/O error"))

	res, err := s.UploadImageAsset(context.Background(), testCustomerID, MarketingImage)

	require.NoError(t, err)
	assert.Equal(t, "asset", res.ResourceName)
}

func TestService_UploadImageAsset_FetchError(t *testing.T) {
	client := new(MockAdsClient)
	images := new(MockImageSource)
	s := newTestService(client, images, nil)

	images.On("Fetch", mock.Anything, MarketingImage.URL).Return(nil, googleads.ErrImageFetchFailed)

	_, err := s.UploadImageAsset(context.Background(), testCustomerID, MarketingImage)

	assert.ErrorIs(t, err, googleads.ErrImageFetchFailed)
	client.AssertNotCalled(t, "MutateAssets", mock.Anything, mock.Anything, mock.Anything)
}

func TestSpecOrDefault(t *testing.T) {
	assert.Equal(t, MarketingImage, specOrDefault(ImageSpec{}, MarketingImage))
	assert.Equal(t,
		ImageSpec{URL: "https://cdn.example.com/a.png", Width: 600, Height: 315},
		specOrDefault(ImageSpec{URL: "https://cdn.example.com/a.png"}, MarketingImage))
	assert.Equal(t,
		ImageSpec{URL: "https://cdn.example.com/b.png", Width: 1200, Height: 628},
		specOrDefault(ImageSpec{URL: "https://cdn.example.com/b.png", Width: 1200, Height: 628}, MarketingImage))
}
