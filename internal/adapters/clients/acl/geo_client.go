package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/go-address-selector/internal/adapters/clients/acl/geo"
	"github.com/jsamuelsen11/go-address-selector/internal/domain/address"
	"github.com/jsamuelsen11/go-address-selector/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-address-selector/internal/ports"
)

// Compile-time interface check.
var _ ports.GeoClient = (*GeoClient)(nil)

// GeoClient is the outbound adapter for the VnAppMob province API. It
// implements [ports.GeoClient].
//
// Responses are translated by the [geo] subpackage. HTTP errors are mapped
// to domain errors by [TranslateHTTPError]; a body that is not JSON is
// reported as a decode error.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, OpenTelemetry tracing, and health checking for every outbound
// call. Calls are never retried.
type GeoClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewGeoClient creates a GeoClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the API root
// (e.g. "https://vapi.vnappmob.com/api/v2").
func NewGeoClient(client *httpclient.Client, logger *slog.Logger) *GeoClient {
	return &GeoClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListProvinces fetches every province from GET /province/.
func (c *GeoClient) ListProvinces(ctx context.Context) ([]address.Province, error) {
	var dto geo.ListResponseDTO
	if err := c.req.Get(ctx, "/province/", &dto); err != nil {
		return nil, err
	}
	return geo.ToDomainProvinces(dto), nil
}

// ListDistricts fetches the districts of one province from
// GET /province/district/{provinceID}.
func (c *GeoClient) ListDistricts(ctx context.Context, provinceID string) ([]address.District, error) {
	var dto geo.ListResponseDTO
	if err := c.req.Get(ctx, "/province/district/"+url.PathEscape(provinceID), &dto); err != nil {
		return nil, err
	}
	return geo.ToDomainDistricts(dto), nil
}

// ListWards fetches the wards of one district from
// GET /province/ward/{districtID}.
func (c *GeoClient) ListWards(ctx context.Context, districtID string) ([]address.Ward, error) {
	var dto geo.ListResponseDTO
	if err := c.req.Get(ctx, "/province/ward/"+url.PathEscape(districtID), &dto); err != nil {
		return nil, err
	}
	return geo.ToDomainWards(dto), nil
}
