package products

import (
	"strings"

	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
)

// ValidateDraft checks the add/edit form fields before anything is sent to
// the server. The returned map is keyed by form field name; nil means valid.
func ValidateDraft(d models.ProductDraft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Product name is required"
	}
	if strings.TrimSpace(d.Code) == "" {
		errs["code"] = "Product code is required"
	}
	if d.Quantity <= 0 {
		errs["quantity"] = "Quantity must be a positive number"
	}
	if d.Price <= 0 {
		errs["price"] = "Price must be a positive number"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
