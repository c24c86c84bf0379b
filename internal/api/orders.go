package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateOrder turns the server-side cart into an order; the backend clears
// the cart itself on success.
func (c *Client) CreateOrder(ctx context.Context) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/", nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/list/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id int64) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/", id), nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}
