package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crewdesk/crewdesk/internal/cache"
	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/crewdesk/crewdesk/internal/httpclient"
	"github.com/crewdesk/crewdesk/internal/logger"
)

// CatalogRepository reads service requests from the upstream catalog
// endpoint. Responses are cached; the catalog is owned by another
// system and is read-only from here.
type CatalogRepository struct {
	client   httpclient.Client
	cache    cache.Cache
	baseURL  string
	apiKey   string
	cacheTTL time.Duration
	logger   *logger.Logger
}

func NewCatalogRepository(
	client httpclient.Client,
	c cache.Cache,
	cfg *config.Configuration,
	log *logger.Logger,
) *CatalogRepository {
	return &CatalogRepository{
		client:   client,
		cache:    c,
		baseURL:  cfg.Catalog.BaseURL,
		apiKey:   cfg.Catalog.APIKey,
		cacheTTL: cfg.Catalog.CacheTTL,
		logger:   log,
	}
}

// listResponse mirrors the upstream list envelope. Unknown fields are
// ignored.
type listResponse struct {
	Items []*servicerequest.ServiceRequest `json:"items"`
}

func (r *CatalogRepository) Get(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	cacheKey := cache.GenerateKey(cache.PrefixServiceRequest, id)
	if cached, found := r.cache.Get(ctx, cacheKey); found {
		if sr, ok := cached.(*servicerequest.ServiceRequest); ok {
			return sr, nil
		}
	}

	var sr servicerequest.ServiceRequest
	if err := r.makeRequest(ctx, fmt.Sprintf("/service-requests/%s", id), &sr); err != nil {
		if httpErr, ok := httpclient.IsHTTPError(err); ok && httpErr.StatusCode == http.StatusNotFound {
			return nil, servicerequest.ErrServiceRequestNotFound
		}
		return nil, err
	}

	if sr.ID == "" {
		// Malformed upstream row; treat the same as missing
		return nil, servicerequest.ErrServiceRequestNotFound
	}

	r.cache.Set(ctx, cacheKey, &sr, r.cacheTTL)
	return &sr, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	cacheKey := cache.GenerateKey(cache.PrefixServiceRequest, "list")
	if cached, found := r.cache.Get(ctx, cacheKey); found {
		if items, ok := cached.([]*servicerequest.ServiceRequest); ok {
			return items, nil
		}
	}

	var resp listResponse
	if err := r.makeRequest(ctx, "/service-requests", &resp); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, resp.Items, r.cacheTTL)
	return resp.Items, nil
}

func (r *CatalogRepository) makeRequest(ctx context.Context, endpoint string, response interface{}) error {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if r.apiKey != "" {
		headers["X-API-KEY"] = r.apiKey
	}

	resp, err := r.client.Send(ctx, &httpclient.Request{
		Method:  http.MethodGet,
		URL:     fmt.Sprintf("%s%s", r.baseURL, endpoint),
		Headers: headers,
	})
	if err != nil {
		if _, ok := httpclient.IsHTTPError(err); ok {
			return err
		}
		r.logger.Errorw("catalog request failed",
			"error", err,
			"endpoint", endpoint)
		return ierr.WithError(err).
			WithHint("Unable to reach the service catalog").
			Mark(ierr.ErrHTTPClient)
	}

	if err := json.Unmarshal(resp.Body, response); err != nil {
		r.logger.Errorw("failed to decode catalog response",
			"error", err,
			"endpoint", endpoint)
		return ierr.WithError(err).
			WithHint("Service catalog returned an unexpected payload").
			Mark(ierr.ErrHTTPClient)
	}

	return nil
}
