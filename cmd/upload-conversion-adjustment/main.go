// Command upload-conversion-adjustment retracts or restates a conversion
// previously recorded for a click.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"adsexamples/internal/application/conversion"
	"adsexamples/internal/delivery/cli"
	"adsexamples/internal/domain/googleads"
)

const description = "Imports conversion adjustments for conversions that already exist."

type options struct {
	customerID         string
	conversionActionID string
	gclid              string
	adjustmentType     string
	conversionTime     string
	adjustmentTime     string
	restatementValue   string
	currencyCode       string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	req, code, err := parseFlags(args, os.Stderr)
	if err != nil {
		return code
	}

	app, err := cli.NewApp(context.Background())
	if err != nil {
		return cli.ReportError(os.Stdout, err)
	}
	defer app.Close()

	ctx, cancel := app.Context(context.Background())
	defer cancel()

	result, err := conversion.NewService(app.Client, app.Log).Upload(ctx, *req)
	if err != nil {
		return cli.ReportError(os.Stdout, err)
	}
	printResult(os.Stdout, result)
	return cli.ExitOK
}

// parseFlags returns the exit code to use when err is not nil
func parseFlags(args []string, stderr io.Writer) (*conversion.Request, int, error) {
	fs := cli.NewFlagSet("upload-conversion-adjustment", description, stderr)

	var opts options
	fs.StringVarP(&opts.customerID, "customer_id", "c", "", "The Google Ads customer ID.")
	fs.StringVarP(&opts.conversionActionID, "conversion_action_id", "a", "", "The conversion action ID.")
	fs.StringVarP(&opts.gclid, "gcl_id", "g", "", "The Google Click Identifier ID.")
	fs.StringVarP(&opts.adjustmentType, "adjustment_type", "d", "",
		"The adjustment type, e.g. RETRACTION, RESTATEMENT.")
	fs.StringVarP(&opts.conversionTime, "conversion_time", "t", "",
		"The conversion time in \"yyyy-mm-dd hh:mm:ss+|-hh:mm\" format.")
	fs.StringVarP(&opts.adjustmentTime, "adjustment_time", "v", "",
		"The adjustment time in \"yyyy-mm-dd hh:mm:ss+|-hh:mm\" format.")
	fs.StringVarP(&opts.restatementValue, "restatement_value", "r", "",
		"The adjusted value for adjustment type RESTATEMENT. Ignored for RETRACTION.")
	fs.StringVar(&opts.currencyCode, "currency_code", conversion.DefaultCurrencyCode,
		"The currency of the restatement value.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, cli.ExitOK, err
		}
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	err := cli.RequireFlags(fs, "customer_id", "conversion_action_id", "gcl_id",
		"adjustment_type", "conversion_time", "adjustment_time")
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return nil, cli.ExitUsage, err
	}

	customerID, err := googleads.NormalizeCustomerID(opts.customerID)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	if _, err := conversion.ParseAdjustmentType(opts.adjustmentType); err != nil {
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	if err := googleads.ValidateResourceID(opts.conversionActionID); err != nil {
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}

	req := &conversion.Request{
		CustomerID:         customerID,
		ConversionActionID: opts.conversionActionID,
		Gclid:              opts.gclid,
		AdjustmentType:     opts.adjustmentType,
		ConversionTime:     opts.conversionTime,
		AdjustmentTime:     opts.adjustmentTime,
		CurrencyCode:       opts.currencyCode,
	}
	if opts.restatementValue != "" {
		value, err := decimal.NewFromString(opts.restatementValue)
		if err != nil {
			err = fmt.Errorf("invalid restatement value %q: %w", opts.restatementValue, err)
			fmt.Fprintln(stderr, err)
			return nil, cli.ExitUsage, err
		}
		req.RestatementValue = &value
	}

	return req, cli.ExitOK, nil
}

func printResult(w io.Writer, result *googleads.ConversionAdjustmentResult) {
	var conversionTime, gclid string
	if result.GclidDateTimePair != nil {
		conversionTime = result.GclidDateTimePair.ConversionDateTime
		gclid = result.GclidDateTimePair.Gclid
	}
	fmt.Fprintf(w, "Uploaded conversion that occurred at \"%s\" from Gclid \"%s\" to \"%s\"\n",
		conversionTime, gclid, result.ConversionAction)
}
