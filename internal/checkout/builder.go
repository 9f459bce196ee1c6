package checkout

import "github.com/storely/checkout/internal/models"

// buildOrderRequest assembles the gateway payload from resolved lines:
// one purchase unit per line, funds captured immediately on approval.
func buildOrderRequest(lines []models.ResolvedLine) models.OrderRequest {
	units := make([]models.PurchaseUnit, len(lines))
	for i, line := range lines {
		units[i] = models.PurchaseUnit{
			Amount: models.Amount{
				CurrencyCode: line.CurrencyCode,
				Value:        line.Value,
			},
		}
	}
	return models.OrderRequest{
		Intent:        models.IntentCapture,
		PurchaseUnits: units,
	}
}
