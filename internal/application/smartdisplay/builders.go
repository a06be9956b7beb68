package smartdisplay

import (
	"time"

	"adsexamples/internal/domain/googleads"
)

// DateFormat is the layout of campaign start and end dates
const DateFormat = "20060102"

const (
	BudgetAmountMicros   = 500000
	TargetCpaMicros      = 5000000
	CampaignDurationDays = 365
	FinalURL             = "https://www.example.com"
	Headline             = "Travel"
	LongHeadline         = "Travel the World"
	Description          = "Take to the air!"
	BusinessName         = "Google"
	CallToActionText     = "Shop Now"
	PricePrefix          = "as low as"
	PromoText            = "Free shipping!"
	budgetNamePrefix     = "Interplanetary Cruise Budget #"
	campaignNamePrefix   = "Smart Display Campaign #"
	adGroupNamePrefix    = "Earth to Mars Cruises #"
)

// ImageSpec is an image to upload together with its declared pixel size
type ImageSpec struct {
	URL    string
	Width  int64
	Height int64
}

var (
	MarketingImage       = ImageSpec{URL: "https://goo.gl/3b9Wfh", Width: 600, Height: 315}
	SquareMarketingImage = ImageSpec{URL: "https://goo.gl/mtt54n", Width: 512, Height: 512}
)

// NewBudgetOperation builds the create operation for the campaign budget
func NewBudgetOperation(id string) googleads.CampaignBudgetOperation {
	return googleads.CampaignBudgetOperation{
		Create: &googleads.CampaignBudget{
			Name:           budgetNamePrefix + id,
			DeliveryMethod: googleads.BudgetDeliveryMethodStandard,
			AmountMicros:   BudgetAmountMicros,
		},
	}
}

// NewCampaignOperation builds the create operation for a paused Smart
// Display campaign starting the day after today and running for a year.
// Smart Display campaigns require the TargetCpa bidding strategy.
func NewCampaignOperation(id, budgetResourceName string, today time.Time) googleads.CampaignOperation {
	startDate := today.AddDate(0, 0, 1)
	endDate := startDate.AddDate(0, 0, CampaignDurationDays)

	return googleads.CampaignOperation{
		Create: &googleads.Campaign{
			Name:                      campaignNamePrefix + id,
			AdvertisingChannelType:    googleads.AdvertisingChannelTypeDisplay,
			AdvertisingChannelSubType: googleads.AdvertisingChannelSubTypeDisplaySmartCampaign,
			Status:                    googleads.CampaignStatusPaused,
			TargetCpa:                 &googleads.TargetCpa{TargetCpaMicros: TargetCpaMicros},
			CampaignBudget:            budgetResourceName,
			StartDate:                 startDate.Format(DateFormat),
			EndDate:                   endDate.Format(DateFormat),
		},
	}
}

// NewAdGroupOperation builds the create operation for a paused ad group
func NewAdGroupOperation(id, campaignResourceName string) googleads.AdGroupOperation {
	return googleads.AdGroupOperation{
		Create: &googleads.AdGroup{
			Name:     adGroupNamePrefix + id,
			Status:   googleads.AdGroupStatusPaused,
			Campaign: campaignResourceName,
		},
	}
}

// NewImageAssetOperation builds the create operation for an image asset.
// The asset name is left unset: a named asset must be unique among the
// customer's active assets.
func NewImageAssetOperation(img *googleads.Image, spec ImageSpec) googleads.AssetOperation {
	return googleads.AssetOperation{
		Create: &googleads.Asset{
			Type: googleads.AssetTypeImage,
			ImageAsset: &googleads.ImageAsset{
				Data:     img.Data,
				FileSize: int64(len(img.Data)),
				MimeType: img.MimeType,
				FullSize: &googleads.ImageDimension{
					WidthPixels:  spec.Width,
					HeightPixels: spec.Height,
					URL:          spec.URL,
				},
			},
		},
	}
}

// NewResponsiveDisplayAdOperation builds the create operation for a paused
// responsive display ad using the two image assets.
func NewResponsiveDisplayAdOperation(adGroupResourceName, marketingImage, squareMarketingImage string) googleads.AdGroupAdOperation {
	return googleads.AdGroupAdOperation{
		Create: &googleads.AdGroupAd{
			AdGroup: adGroupResourceName,
			Status:  googleads.AdGroupAdStatusPaused,
			Ad: &googleads.Ad{
				FinalURLs: []string{FinalURL},
				ResponsiveDisplayAd: &googleads.ResponsiveDisplayAdInfo{
					Headlines:             []googleads.AdTextAsset{{Text: Headline}},
					LongHeadline:          &googleads.AdTextAsset{Text: LongHeadline},
					Descriptions:          []googleads.AdTextAsset{{Text: Description}},
					BusinessName:          BusinessName,
					MarketingImages:       []googleads.AdImageAsset{{Asset: marketingImage}},
					SquareMarketingImages: []googleads.AdImageAsset{{Asset: squareMarketingImage}},
					CallToActionText:      CallToActionText,
					PricePrefix:           PricePrefix,
					PromoText:             PromoText,
				},
			},
		},
	}
}
