package cli

import (
	"errors"
	"fmt"
	"io"

	"adsexamples/internal/domain/googleads"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ReportError prints err to w and returns the exit code for it. Google Ads
// failures are printed with their request id and one line per error and
// field.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}

	var apiErr *googleads.APIError
	if !errors.As(err, &apiErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintf(w, "Request with ID \"%s\" failed with status \"%s\" and includes the following errors:\n",
		apiErr.RequestID, apiErr.Status)
	if len(apiErr.Errors) == 0 && apiErr.Message != "" {
		fmt.Fprintf(w, "\tError with message \"%s\".\n", apiErr.Message)
	}
	for _, e := range apiErr.Errors {
		fmt.Fprintf(w, "\tError with message \"%s\".\n", e.Message)
		for _, field := range e.FieldPath() {
			fmt.Fprintf(w, "\t\tOn field: %s\n", field)
		}
	}
	return ExitFailure
}
