package googleads

import "errors"

var (
	ErrEmptyResults          = errors.New("response contained no results")
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type specified")
	ErrInvalidCustomerID     = errors.New("customer id must contain only digits and dashes")
	ErrInvalidResourceID     = errors.New("resource id must contain only digits")
	ErrAssetNotFound         = errors.New("cached asset not found")
	ErrImageFetchFailed      = errors.New("failed to fetch image")
)
