package usecase

import (
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
)

// NewImageFetchClient builds the HTTP client used for by-link ingestion.
// safeurl validates resolved IPs at the dialer level, so private ranges,
// loopback, link-local and cloud metadata addresses are blocked even
// through DNS rebinding. The timeout bounds the whole fetch.
func NewImageFetchClient(timeout time.Duration) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return safeurl.Client(config).Client
}
