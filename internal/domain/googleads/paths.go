package googleads

import (
	"fmt"
	"strings"
)

// NormalizeCustomerID strips the dashes of a customer id as displayed in the
// Google Ads UI (123-456-7890) and checks that only digits remain.
func NormalizeCustomerID(customerID string) (string, error) {
	id := strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
	if !isDigits(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCustomerID, customerID)
	}
	return id, nil
}

// ConversionActionPath returns the resource name of a conversion action
func ConversionActionPath(customerID, conversionActionID string) string {
	return "customers/" + customerID + "/conversionActions/" + conversionActionID
}

// CampaignCriterionPath returns the resource name of a campaign criterion
func CampaignCriterionPath(customerID, campaignID, criterionID string) string {
	return "customers/" + customerID + "/campaignCriteria/" + campaignID + "~" + criterionID
}

// ValidateResourceID checks that an id passed on the command line is numeric
func ValidateResourceID(id string) error {
	if !isDigits(id) {
		return fmt.Errorf("%w: %q", ErrInvalidResourceID, id)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
