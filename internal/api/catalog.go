package api

import (
	"context"
	"net/http"
)

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
