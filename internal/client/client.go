// Package client submits the caption form to the generation endpoint and
// turns the reply into what the form displays.
package client

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wordweaver-ai/wordweaver/internal/caption"
)

const (
	GenericErrorMessage = "An error occurred while generating content."
	ConnectErrorMessage = "Unable to connect to the server. Please check your internet connection."
)

type Request struct {
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Style       string `json:"style"`
	Language    string `json:"language"`
}

// Outcome is what the form shows after a submission: the caption
// alternatives, or a single message when Failed is set.
type Outcome struct {
	Alternatives []string
	Failed       bool
}

type Client struct {
	http *resty.Client
}

type Options struct {
	// Timeout of zero leaves requests unbounded; callers cancel via ctx.
	Timeout time.Duration
}

func New(baseURL string, opts Options) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	return &Client{http: c}
}

// CanSubmit reports whether the submit action is available.
func CanSubmit(description string, loading bool) bool {
	return !loading && strings.TrimSpace(description) != ""
}

type resultBody struct {
	Result *string `json:"result"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Generate posts req once and never returns an error: failures become a
// one-message Outcome, distinguishing server-reported errors from requests
// that never got a usable reply.
func (c *Client) Generate(ctx context.Context, req Request) Outcome {
	var (
		ok     resultBody
		failed errorBody
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&ok).
		SetError(&failed).
		Post("/api/generate")
	if err != nil {
		return Outcome{Alternatives: []string{ConnectErrorMessage}, Failed: true}
	}

	if resp.IsSuccess() {
		// a success without a decodable result is treated like no reply at all
		if ok.Result == nil {
			return Outcome{Alternatives: []string{ConnectErrorMessage}, Failed: true}
		}
		return Outcome{Alternatives: caption.Split(*ok.Result)}
	}

	msg := failed.Error
	if msg == "" {
		msg = GenericErrorMessage
	}
	return Outcome{Alternatives: []string{"Error: " + msg}, Failed: true}
}
