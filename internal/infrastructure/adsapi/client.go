// Package adsapi is a minimal Google Ads REST client covering the mutate
// and upload calls used by the commands in this repository.
package adsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/genproto/googleapis/rpc/code"

	"adsexamples/internal/domain/googleads"
	"adsexamples/internal/infrastructure/config"
)

// AdWordsScope is the OAuth2 scope required by the Google Ads API
const AdWordsScope = "https://www.googleapis.com/auth/adwords"

// RequestIDHeader carries the request id on every Google Ads response
const RequestIDHeader = "request-id"

// Options configures a Client
type Options struct {
	Endpoint        string
	APIVersion      string
	DeveloperToken  string
	LoginCustomerID string
}

// Client sends requests to the Google Ads REST API
type Client struct {
	httpClient      *http.Client
	baseURL         string
	developerToken  string
	loginCustomerID string
	log             *zap.Logger
}

// NewClient creates a client authenticated with the refresh token from cfg
func NewClient(ctx context.Context, cfg *config.Config, log *zap.Logger) *Client {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{AdWordsScope},
		Endpoint:     google.Endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
		TokenType:    "Bearer",
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return New(httpClient, Options{
		Endpoint:        cfg.Endpoint,
		APIVersion:      cfg.APIVersion,
		DeveloperToken:  cfg.DeveloperToken,
		LoginCustomerID: cfg.LoginCustomerID,
	}, log)
}

// New creates a client on top of an already authenticated http.Client
func New(httpClient *http.Client, opts Options, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		httpClient:      httpClient,
		baseURL:         strings.TrimRight(opts.Endpoint, "/") + "/" + opts.APIVersion,
		developerToken:  opts.DeveloperToken,
		loginCustomerID: opts.LoginCustomerID,
		log:             log,
	}
}

// MutateCampaignBudgets handles POST customers/{id}/campaignBudgets:mutate
func (c *Client) MutateCampaignBudgets(ctx context.Context, customerID string, ops []googleads.CampaignBudgetOperation) (*googleads.MutateResponse, error) {
	return mutate(ctx, c, customerID, "campaignBudgets", ops)
}

// MutateCampaigns handles POST customers/{id}/campaigns:mutate
func (c *Client) MutateCampaigns(ctx context.Context, customerID string, ops []googleads.CampaignOperation) (*googleads.MutateResponse, error) {
	return mutate(ctx, c, customerID, "campaigns", ops)
}

// MutateAdGroups handles POST customers/{id}/adGroups:mutate
func (c *Client) MutateAdGroups(ctx context.Context, customerID string, ops []googleads.AdGroupOperation) (*googleads.MutateResponse, error) {
	return mutate(ctx, c, customerID, "adGroups", ops)
}

// MutateAssets handles POST customers/{id}/assets:mutate
func (c *Client) MutateAssets(ctx context.Context, customerID string, ops []googleads.AssetOperation) (*googleads.MutateResponse, error) {
	return mutate(ctx, c, customerID, "assets", ops)
}

// MutateAdGroupAds handles POST customers/{id}/adGroupAds:mutate
func (c *Client) MutateAdGroupAds(ctx context.Context, customerID string, ops []googleads.AdGroupAdOperation) (*googleads.MutateResponse, error) {
	return mutate(ctx, c, customerID, "adGroupAds", ops)
}

// MutateCampaignCriteria handles POST customers/{id}/campaignCriteria:mutate
func (c *Client) MutateCampaignCriteria(ctx context.Context, customerID string, ops []googleads.CampaignCriterionOperation) (*googleads.MutateResponse, error) {
	return mutate(ctx, c, customerID, "campaignCriteria", ops)
}

// UploadConversionAdjustments handles POST customers/{id}:uploadConversionAdjustments
func (c *Client) UploadConversionAdjustments(ctx context.Context, customerID string, adjustments []googleads.ConversionAdjustment, partialFailure bool) (*googleads.UploadConversionAdjustmentsResponse, error) {
	req := googleads.UploadConversionAdjustmentsRequest{
		ConversionAdjustments: adjustments,
		PartialFailure:        partialFailure,
	}

	var resp googleads.UploadConversionAdjustmentsResponse
	requestID, err := c.post(ctx, "/customers/"+customerID+":uploadConversionAdjustments", req, &resp)
	if err != nil {
		return nil, err
	}
	resp.RequestID = requestID
	return &resp, nil
}

func mutate[T any](ctx context.Context, c *Client, customerID, collection string, ops []T) (*googleads.MutateResponse, error) {
	req := googleads.MutateRequest[T]{Operations: ops}

	var resp googleads.MutateResponse
	requestID, err := c.post(ctx, "/customers/"+customerID+"/"+collection+":mutate", req, &resp)
	if err != nil {
		return nil, err
	}
	resp.RequestID = requestID
	return &resp, nil
}

// post sends body as JSON and decodes a successful response into out. Any
// response the API rejected is returned as a *googleads.APIError.
func (c *Client) post(ctx context.Context, path string, body, out any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	c.log.Debug("Sending Google Ads request", zap.String("url", url), zap.Int("bytes", len(payload)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	requestID := resp.Header.Get(RequestIDHeader)
	c.log.Debug("Received Google Ads response",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return requestID, decodeError(resp.StatusCode, requestID, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return requestID, fmt.Errorf("failed to decode response: %w", err)
	}
	return requestID, nil
}

func decodeError(httpStatus int, requestID string, body []byte) error {
	var envelope struct {
		Error *googleads.Status `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return googleads.NewAPIError(httpStatus, requestID, &googleads.Status{
			Code:    int(code.Code_UNKNOWN),
			Message: strings.TrimSpace(string(body)),
		})
	}
	return googleads.NewAPIError(httpStatus, requestID, envelope.Error)
}
