package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty surface
// while outbound-call policy (base URL, timeouts) stays configurable per
// adapter. The email adapter is its only consumer today.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection
// pool and configuration.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://email-service/health")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
