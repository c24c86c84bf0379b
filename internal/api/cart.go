package api

import (
	"context"
	"net/http"
	"net/url"
)

// The cart endpoints key items by product name, not id; that is the backend's
// contract, so names are escaped into the path here.

func (c *Client) Cart(ctx context.Context) (Cart, error) {
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart/", nil, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *Client) AddToCart(ctx context.Context, productName string, price float64, quantity int) error {
	body := map[string]any{
		"product_name": productName,
		"price":        price,
		"quantity":     quantity,
	}
	return c.do(ctx, http.MethodPost, "/api/cart/add/", body, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, productName string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/remove/"+url.PathEscape(productName)+"/", nil, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, productName string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/api/cart/update/"+url.PathEscape(productName)+"/", body, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/clear/", nil, nil)
}
