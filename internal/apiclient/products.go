package apiclient

import (
	"context"

	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
)

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/products", &products, "An error occurred while fetching products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := c.get(ctx, "/products/"+id, &product, "An error occurred while fetching the product")
	return product, err
}

// CreateProduct returns the server's canonical product, including the
// server-assigned id.
func (c *Client) CreateProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	var product models.Product
	err := c.post(ctx, "/products", draft, &product, "An error occurred while creating the product")
	return product, err
}

// UpdateProduct sends the draft as-is; ProductDraft carries no identifier
// field, so ids are never part of the payload.
func (c *Client) UpdateProduct(ctx context.Context, id string, draft models.ProductDraft) (models.Product, error) {
	var product models.Product
	err := c.put(ctx, "/products/"+id, draft, &product, "An error occurred while updating the product")
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/products/"+id, "An error occurred while deleting the product")
}
