package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/port"
	"golang.org/x/text/currency"
)

type catalogClient struct {
	rest restClient
	unit currency.Unit
}

// NewCatalog builds a catalog client against the given base URL. Prices on
// the wire are bare numbers; the configured currency unit is attached on the
// way in.
func NewCatalog(baseURL string, unit currency.Unit, httpc *http.Client) port.CatalogService {
	return &catalogClient{
		rest: newRestClient(baseURL, httpc),
		unit: unit,
	}
}

func (c *catalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.rest.do(ctx, http.MethodGet, "/products", nil, &dtos); err != nil {
		return nil, fmt.Errorf("rest.do: %w", err)
	}

	return mapProductsToDomain(dtos, c.unit), nil
}

func (c *catalogClient) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var dto productDTO
	if err := c.rest.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &dto); err != nil {
		return domain.Product{}, fmt.Errorf("rest.do: %w", err)
	}

	return mapProductToDomain(dto, c.unit), nil
}

func (c *catalogClient) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	in := mapProductFromDomain(p)
	in.ID = "" // server-assigned

	var dto productDTO
	if err := c.rest.do(ctx, http.MethodPost, "/products", in, &dto); err != nil {
		return domain.Product{}, fmt.Errorf("rest.do: %w", err)
	}

	return mapProductToDomain(dto, c.unit), nil
}

func (c *catalogClient) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var dto productDTO
	if err := c.rest.do(ctx, http.MethodPut, "/products/"+url.PathEscape(p.ID), mapProductFromDomain(p), &dto); err != nil {
		return domain.Product{}, fmt.Errorf("rest.do: %w", err)
	}

	return mapProductToDomain(dto, c.unit), nil
}

func (c *catalogClient) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	if err := c.rest.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("rest.do: %w", err)
	}

	return nil
}
