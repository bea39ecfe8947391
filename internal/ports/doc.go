// Package ports defines the interfaces that join the address selector's
// layers. SelectionService is implemented by the app layer and called by the
// HTTP handlers. GeoClient is implemented by the geo-api adapter and called by
// the app layer. HealthChecker and HealthRegistry let the readiness probe
// query geo-api and the session store without importing either.
package ports
