package googleads

// BudgetDeliveryMethod controls how fast a budget is spent
type BudgetDeliveryMethod string

const (
	BudgetDeliveryMethodStandard    BudgetDeliveryMethod = "STANDARD"
	BudgetDeliveryMethodAccelerated BudgetDeliveryMethod = "ACCELERATED"
)

// CampaignStatus is the serving status of a campaign
type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
)

// AdvertisingChannelType is the primary serving target of a campaign
type AdvertisingChannelType string

const (
	AdvertisingChannelTypeSearch  AdvertisingChannelType = "SEARCH"
	AdvertisingChannelTypeDisplay AdvertisingChannelType = "DISPLAY"
)

// AdvertisingChannelSubType refines AdvertisingChannelType
type AdvertisingChannelSubType string

// Smart Display campaigns must use this subtype.
const AdvertisingChannelSubTypeDisplaySmartCampaign AdvertisingChannelSubType = "DISPLAY_SMART_CAMPAIGN"

// AdGroupStatus is the status of an ad group
type AdGroupStatus string

const (
	AdGroupStatusEnabled AdGroupStatus = "ENABLED"
	AdGroupStatusPaused  AdGroupStatus = "PAUSED"
)

// AdGroupAdStatus is the status of an ad group ad
type AdGroupAdStatus string

const (
	AdGroupAdStatusEnabled AdGroupAdStatus = "ENABLED"
	AdGroupAdStatusPaused  AdGroupAdStatus = "PAUSED"
)

// AssetType is the type of an asset
type AssetType string

const AssetTypeImage AssetType = "IMAGE"

// MimeType is the mime type of an image asset
type MimeType string

const (
	MimeTypeImageJPEG MimeType = "IMAGE_JPEG"
	MimeTypeImagePNG  MimeType = "IMAGE_PNG"
	MimeTypeImageGIF  MimeType = "IMAGE_GIF"
)

// ConversionAdjustmentType is the kind of adjustment applied to a conversion
type ConversionAdjustmentType string

const (
	ConversionAdjustmentTypeRetraction  ConversionAdjustmentType = "RETRACTION"
	ConversionAdjustmentTypeRestatement ConversionAdjustmentType = "RESTATEMENT"
)
