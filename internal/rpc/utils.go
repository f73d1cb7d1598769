package rpc

import (
	"net/url"
	"time"

	config "github.com/thirdweb-dev/inspector/configs"
	"go.uber.org/ratelimit"
)

const DEFAULT_CALL_TIMEOUT_MS = 10000

func GetCallTimeout() time.Duration {
	timeout := config.Cfg.RPC.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_CALL_TIMEOUT_MS
	}
	return time.Duration(timeout) * time.Millisecond
}

// redactURL drops path and credentials, hosted node URLs usually carry the API key there.
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "<invalid url>"
	}
	return parsed.Scheme + "://" + parsed.Host
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}
