// Command add-smart-display-ad creates a Smart Display campaign, an ad group
// and a responsive display ad that uses two image assets.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"adsexamples/internal/application/smartdisplay"
	"adsexamples/internal/delivery/cli"
	"adsexamples/internal/domain/googleads"
)

const description = "Adds a Smart Display campaign, an ad group, and a responsive display ad."

type options struct {
	customerID                       string
	marketingImageResourceName       string
	squareMarketingImageResourceName string
	marketingImageURL                string
	squareMarketingImageURL          string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, code, err := parseFlags(args, os.Stderr)
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

	svc := smartdisplay.NewService(app.Client, app.ImageSource("."), app.AssetCache(), app.Log)
	res, err := svc.Run(ctx, opts.request())
	printResult(os.Stdout, res)
	if err != nil {
		return cli.ReportError(os.Stdout, err)
	}
	return cli.ExitOK
}

// parseFlags returns the exit code to use when err is not nil
func parseFlags(args []string, stderr io.Writer) (*options, int, error) {
	fs := cli.NewFlagSet("add-smart-display-ad", description, stderr)

	opts := &options{}
	fs.StringVarP(&opts.customerID, "customer_id", "c", "", "The Google Ads customer ID.")
	fs.StringVarP(&opts.marketingImageResourceName, "marketing_image_resource_name", "m", "",
		"The resource name for an image asset to be used as a marketing image.")
	fs.StringVarP(&opts.squareMarketingImageResourceName, "square_marketing_image_resource_name", "s", "",
		"The resource name for an image asset to be used as a square marketing image.")
	fs.StringVar(&opts.marketingImageURL, "marketing_image_url", smartdisplay.MarketingImage.URL,
		"The URL (http, https or file) of the marketing image to upload when no resource name is given.")
	fs.StringVar(&opts.squareMarketingImageURL, "square_marketing_image_url", smartdisplay.SquareMarketingImage.URL,
		"The URL (http, https or file) of the square marketing image to upload when no resource name is given.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, cli.ExitOK, err
		}
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	if err := cli.RequireFlags(fs, "customer_id"); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return nil, cli.ExitUsage, err
	}

	customerID, err := googleads.NormalizeCustomerID(opts.customerID)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	opts.customerID = customerID

	return opts, cli.ExitOK, nil
}

func (o *options) request() smartdisplay.Request {
	marketing := smartdisplay.MarketingImage
	marketing.URL = o.marketingImageURL
	square := smartdisplay.SquareMarketingImage
	square.URL = o.squareMarketingImageURL

	return smartdisplay.Request{
		CustomerID:                       o.customerID,
		MarketingImageResourceName:       o.marketingImageResourceName,
		SquareMarketingImageResourceName: o.squareMarketingImageResourceName,
		MarketingImage:                   marketing,
		SquareMarketingImage:             square,
	}
}

// printResult prints every resource name the run got to, in pipeline order
func printResult(w io.Writer, res *smartdisplay.Result) {
	if res == nil {
		return
	}
	if res.BudgetResourceName != "" {
		fmt.Fprintf(w, "Created budget with resource name \"%s\".\n", res.BudgetResourceName)
	}
	if res.CampaignResourceName != "" {
		fmt.Fprintf(w, "Created smart display campaign with resource name \"%s\".\n", res.CampaignResourceName)
	}
	if res.AdGroupResourceName != "" {
		fmt.Fprintf(w, "Created ad group with resource name \"%s\".\n", res.AdGroupResourceName)
	}
	printAsset(w, "marketing image", res.MarketingImage)
	printAsset(w, "square marketing image", res.SquareMarketingImage)
	if res.AdGroupAdResourceName != "" {
		fmt.Fprintf(w, "Created responsive display ad with resource name \"%s\".\n", res.AdGroupAdResourceName)
	}
}

func printAsset(w io.Writer, kind string, asset smartdisplay.AssetResult) {
	if asset.ResourceName == "" {
		return
	}
	switch asset.Source {
	case smartdisplay.AssetSourceExisting:
		fmt.Fprintf(w, "Using existing %s asset with resource name \"%s\".\n", kind, asset.ResourceName)
	case smartdisplay.AssetSourceCached:
		fmt.Fprintf(w, "Reusing cached %s asset with resource name \"%s\".\n", kind, asset.ResourceName)
	default:
		fmt.Fprintf(w, "Created %s asset with resource name \"%s\".\n", kind, asset.ResourceName)
	}
}
