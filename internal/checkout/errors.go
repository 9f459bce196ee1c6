package checkout

import (
	"errors"
	"fmt"
)

// ErrEmptyOrderID reports a capture attempt without an order id.
var ErrEmptyOrderID = errors.New("order id is required")

// ProductNotFoundError reports a cart line referencing a product the
// catalog does not know. The whole order creation fails; no gateway call
// is made.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found in catalog", e.ProductID)
}
