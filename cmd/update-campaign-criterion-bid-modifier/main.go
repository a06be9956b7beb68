// Command update-campaign-criterion-bid-modifier changes the bid modifier of
// a campaign criterion.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"adsexamples/internal/application/criterion"
	"adsexamples/internal/delivery/cli"
	"adsexamples/internal/domain/googleads"
)

const description = "Updates the bid modifier of a campaign criterion."

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

	name, err := criterion.NewService(app.Client, app.Log).UpdateBidModifier(ctx, *req)
	if err != nil {
		return cli.ReportError(os.Stdout, err)
	}
	fmt.Fprintf(os.Stdout, "Campaign criterion with resource name \"%s\" was modified.\n", name)
	return cli.ExitOK
}

// parseFlags returns the exit code to use when err is not nil
func parseFlags(args []string, stderr io.Writer) (*criterion.Request, int, error) {
	fs := cli.NewFlagSet("update-campaign-criterion-bid-modifier", description, stderr)

	req := &criterion.Request{}
	fs.StringVarP(&req.CustomerID, "customer_id", "c", "", "The Google Ads customer ID.")
	fs.StringVar(&req.CampaignID, "campaign_id", "", "The campaign ID.")
	fs.StringVar(&req.CriterionID, "criterion_id", "", "The campaign criterion ID.")
	fs.Float64VarP(&req.BidModifier, "bid_modifier_value", "b", criterion.DefaultBidModifier, "The bid modifier value.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, cli.ExitOK, err
		}
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	if err := cli.RequireFlags(fs, "customer_id", "campaign_id", "criterion_id"); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return nil, cli.ExitUsage, err
	}

	customerID, err := googleads.NormalizeCustomerID(req.CustomerID)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, cli.ExitUsage, err
	}
	req.CustomerID = customerID

	return req, cli.ExitOK, nil
}
