package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/storely/checkout/internal/catalog"
	"github.com/storely/checkout/internal/models"
)

type fakeCatalog struct {
	mu       sync.Mutex
	products map[string]models.Product
	delays   map[string]time.Duration
	lookups  []string
}

func newFakeCatalog(products map[string]models.Product) *fakeCatalog {
	return &fakeCatalog{products: products, delays: map[string]time.Duration{}}
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, id)
	delay := f.delays[id]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

type fakeGateway struct {
	mu sync.Mutex

	createRequests []models.OrderRequest
	createResult   *models.GatewayOrder
	createErr      error

	captureIDs    []string
	captureResult *models.GatewayCapture
	captureErr    error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.GatewayOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createRequests = append(f.createRequests, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeGateway) CaptureOrder(ctx context.Context, orderID string) (*models.GatewayCapture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captureIDs = append(f.captureIDs, orderID)
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return f.captureResult, nil
}

func (f *fakeGateway) createCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createRequests)
}
