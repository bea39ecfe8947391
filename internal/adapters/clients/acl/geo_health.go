package acl

import (
	"context"
	"fmt"
)

// GeoServiceName identifies the province API in health reports, client
// metrics, and logs. Pass it to [httpclient.New] when building the client.
const GeoServiceName = "geo-api"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *GeoClient) Name() string {
	return GeoServiceName
}

// HealthCheck reports the province API's availability from the circuit
// breaker state. No network call is made.
//
// State mapping:
//   - "closed": operating normally, returns nil.
//   - "half-open": probing recovery, returns a degraded error.
//   - "open": requests are being rejected, returns a failing error.
//
// The result is reported on /health/ready alongside the session store.
// Selectors keep serving while the breaker is open and record the failed
// fetch on the affected level.
func (c *GeoClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", GeoServiceName)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", GeoServiceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", GeoServiceName, state)
	}
}
