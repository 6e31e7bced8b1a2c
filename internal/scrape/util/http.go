package util

import (
	"net/http"
	"time"
)

// UserAgent is sent on every provider request. The career APIs are public
// but several of them refuse clients that do not look like a browser.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func NewClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// SetJSONHeaders applies the standard header set for provider API calls.
func SetJSONHeaders(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
