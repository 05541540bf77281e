package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client identifying itself as
// userAgent. Failed requests are never retried here: a failed sync attempt
// waits for the next scheduled one.
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: client}
}
