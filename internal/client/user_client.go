package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/holafushion/storefront/internal/domain"
	"github.com/holafushion/storefront/internal/port"
)

type userClient struct {
	rest restClient
}

func NewUsers(baseURL string, httpc *http.Client) port.UserService {
	return &userClient{rest: newRestClient(baseURL, httpc)}
}

func (c *userClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dtos []userDTO
	if err := c.rest.do(ctx, http.MethodGet, "/users", nil, &dtos); err != nil {
		return nil, fmt.Errorf("rest.do: %w", err)
	}

	return mapUsersToDomain(dtos), nil
}

func (c *userClient) GetUser(ctx context.Context, id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, fmt.Errorf("id is empty")
	}

	var dto userDTO
	if err := c.rest.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &dto); err != nil {
		return domain.User{}, fmt.Errorf("rest.do: %w", err)
	}

	return mapUserToDomain(dto), nil
}

func (c *userClient) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	in := mapUserFromDomain(u)
	in.ID = "" // server-assigned

	var dto userDTO
	if err := c.rest.do(ctx, http.MethodPost, "/users", in, &dto); err != nil {
		return domain.User{}, fmt.Errorf("rest.do: %w", err)
	}

	return mapUserToDomain(dto), nil
}

func (c *userClient) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		return domain.User{}, fmt.Errorf("id is empty")
	}

	var dto userDTO
	if err := c.rest.do(ctx, http.MethodPut, "/users/"+url.PathEscape(u.ID), mapUserFromDomain(u), &dto); err != nil {
		return domain.User{}, fmt.Errorf("rest.do: %w", err)
	}

	return mapUserToDomain(dto), nil
}

func (c *userClient) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}

	if err := c.rest.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("rest.do: %w", err)
	}

	return nil
}
