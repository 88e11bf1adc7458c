package echoapi

import (
	"net"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/schoolos/schoolos/core"
)

// mockDataMiddleware short-circuits every request while the mock data feature flag is off.
// The flag is read on each request, before anything else runs.
func mockDataMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !conf.EnableMockData {
				return errMockDataDisabled
			}
			return next(ctx)
		}
	}
}

// allowedHostsMiddleware rejects requests whose Host header is not one of hosts.
// A host starting with "." matches the domain and all its subdomains, "*" matches anything.
func allowedHostsMiddleware(hosts []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			host := strings.ToLower(ctx.Request().Host)
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			for _, allowed := range hosts {
				allowed = strings.ToLower(allowed)
				switch {
				case allowed == "*", allowed == host:
					return next(ctx)
				case strings.HasPrefix(allowed, ".") && (host == allowed[1:] || strings.HasSuffix(host, allowed)):
					return next(ctx)
				}
			}
			return errInvalidHost
		}
	}
}
