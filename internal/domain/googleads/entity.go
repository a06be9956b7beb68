package googleads

// CampaignBudget represents a Google Ads campaign budget
type CampaignBudget struct {
	ResourceName   string               `json:"resourceName,omitempty"`
	Name           string               `json:"name,omitempty"`
	AmountMicros   int64                `json:"amountMicros,omitempty"`
	DeliveryMethod BudgetDeliveryMethod `json:"deliveryMethod,omitempty"`
}

// TargetCpa is the Target CPA bidding scheme of a campaign
type TargetCpa struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,omitempty"`
}

// Campaign represents a Google Ads campaign
type Campaign struct {
	ResourceName              string                    `json:"resourceName,omitempty"`
	Name                      string                    `json:"name,omitempty"`
	Status                    CampaignStatus            `json:"status,omitempty"`
	AdvertisingChannelType    AdvertisingChannelType    `json:"advertisingChannelType,omitempty"`
	AdvertisingChannelSubType AdvertisingChannelSubType `json:"advertisingChannelSubType,omitempty"`
	CampaignBudget            string                    `json:"campaignBudget,omitempty"`
	TargetCpa                 *TargetCpa                `json:"targetCpa,omitempty"`
	StartDate                 string                    `json:"startDate,omitempty"`
	EndDate                   string                    `json:"endDate,omitempty"`
}

// AdGroup represents a Google Ads ad group
type AdGroup struct {
	ResourceName string        `json:"resourceName,omitempty"`
	Name         string        `json:"name,omitempty"`
	Status       AdGroupStatus `json:"status,omitempty"`
	Campaign     string        `json:"campaign,omitempty"`
}

// ImageDimension describes one stored size of an image asset
type ImageDimension struct {
	HeightPixels int64  `json:"heightPixels,omitempty"`
	WidthPixels  int64  `json:"widthPixels,omitempty"`
	URL          string `json:"url,omitempty"`
}

// ImageAsset is the image payload of an asset. Data is sent base64 encoded.
type ImageAsset struct {
	Data     []byte          `json:"data,omitempty"`
	FileSize int64           `json:"fileSize,omitempty"`
	MimeType MimeType        `json:"mimeType,omitempty"`
	FullSize *ImageDimension `json:"fullSize,omitempty"`
}

// Asset represents a Google Ads asset
type Asset struct {
	ResourceName string      `json:"resourceName,omitempty"`
	Name         string      `json:"name,omitempty"`
	Type         AssetType   `json:"type,omitempty"`
	ImageAsset   *ImageAsset `json:"imageAsset,omitempty"`
}

// AdTextAsset is a text asset used inside an ad
type AdTextAsset struct {
	Text string `json:"text,omitempty"`
}

// AdImageAsset references an image asset by resource name
type AdImageAsset struct {
	Asset string `json:"asset,omitempty"`
}

// ResponsiveDisplayAdInfo holds the creative of a responsive display ad
type ResponsiveDisplayAdInfo struct {
	MarketingImages       []AdImageAsset `json:"marketingImages,omitempty"`
	SquareMarketingImages []AdImageAsset `json:"squareMarketingImages,omitempty"`
	Headlines             []AdTextAsset  `json:"headlines,omitempty"`
	LongHeadline          *AdTextAsset   `json:"longHeadline,omitempty"`
	Descriptions          []AdTextAsset  `json:"descriptions,omitempty"`
	BusinessName          string         `json:"businessName,omitempty"`
	CallToActionText      string         `json:"callToActionText,omitempty"`
	PricePrefix           string         `json:"pricePrefix,omitempty"`
	PromoText             string         `json:"promoText,omitempty"`
}

// Ad represents a Google Ads ad
type Ad struct {
	FinalURLs           []string                 `json:"finalUrls,omitempty"`
	ResponsiveDisplayAd *ResponsiveDisplayAdInfo `json:"responsiveDisplayAd,omitempty"`
}

// AdGroupAd links an ad to an ad group
type AdGroupAd struct {
	ResourceName string          `json:"resourceName,omitempty"`
	AdGroup      string          `json:"adGroup,omitempty"`
	Status       AdGroupAdStatus `json:"status,omitempty"`
	Ad           *Ad             `json:"ad,omitempty"`
}

// CampaignCriterion represents a campaign criterion. Only the fields this
// repository updates are modelled.
type CampaignCriterion struct {
	ResourceName string `json:"resourceName,omitempty"`
	// BidModifier is always sent; 0 opts the criterion out
	BidModifier float64 `json:"bidModifier"`
}

// RestatementValue is the restated value of a conversion
type RestatementValue struct {
	// AdjustedValue is always sent, a restatement to 0 included
	AdjustedValue float64 `json:"adjustedValue"`
	CurrencyCode  string  `json:"currencyCode,omitempty"`
}

// GclidDateTimePair identifies a conversion by click id and conversion time
type GclidDateTimePair struct {
	Gclid              string `json:"gclid,omitempty"`
	ConversionDateTime string `json:"conversionDateTime,omitempty"`
}

// ConversionAdjustment is one adjustment to an existing conversion
type ConversionAdjustment struct {
	ConversionAction   string                   `json:"conversionAction,omitempty"`
	AdjustmentDateTime string                   `json:"adjustmentDateTime,omitempty"`
	AdjustmentType     ConversionAdjustmentType `json:"adjustmentType,omitempty"`
	RestatementValue   *RestatementValue        `json:"restatementValue,omitempty"`
	GclidDateTimePair  *GclidDateTimePair       `json:"gclidDateTimePair,omitempty"`
}

// ConversionAdjustmentResult is the per-adjustment result of an upload
type ConversionAdjustmentResult struct {
	GclidDateTimePair  *GclidDateTimePair       `json:"gclidDateTimePair,omitempty"`
	ConversionAction   string                   `json:"conversionAction,omitempty"`
	AdjustmentDateTime string                   `json:"adjustmentDateTime,omitempty"`
	AdjustmentType     ConversionAdjustmentType `json:"adjustmentType,omitempty"`
}
