package checkout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/storely/checkout/internal/catalog"
	"github.com/storely/checkout/internal/models"
)

// resolvePrices replaces every client-submitted price with the catalog's
// authoritative unit amount. Lookups run concurrently; results land at
// their cart index, so the output keeps the input order.
func (s *Service) resolvePrices(ctx context.Context, cart []models.CartLine) ([]models.ResolvedLine, error) {
	lines := make([]models.ResolvedLine, len(cart))

	g, ctx := errgroup.WithContext(ctx)
	for i, item := range cart {
		g.Go(func() error {
			product, err := s.Catalog.GetProduct(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, catalog.ErrProductNotFound) {
					return &ProductNotFoundError{ProductID: item.ProductID}
				}
				return fmt.Errorf("lookup product %q: %w", item.ProductID, err)
			}
			lines[i] = models.ResolvedLine{
				CurrencyCode: product.UnitAmount.CurrencyCode,
				Value:        product.UnitAmount.Value,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}
