package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/catalog/domain"
	"github.com/portalaudio/cms/internal/metrics"
)

// productUseCaseWithMetrics decorates ProductUseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    ProductUseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a ProductUseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase ProductUseCase, m metrics.BusinessMetrics) ProductUseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *productUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "catalog", operation, status)
	p.metrics.RecordDuration(ctx, "catalog", operation, time.Since(start), status)
}

// Create records metrics for product creation operations.
func (p *productUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, input)
	p.record(ctx, "product_create", start, err)
	return product, err
}

// Update records metrics for product update operations.
func (p *productUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProductInput,
) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Update(ctx, id, input)
	p.record(ctx, "product_update", start, err)
	return product, err
}

// Get records metrics for product retrieval operations.
func (p *productUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.Get(ctx, id)
	p.record(ctx, "product_get", start, err)
	return product, err
}

// GetBySlug records metrics for public product detail reads.
func (p *productUseCaseWithMetrics) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	start := time.Now()
	product, err := p.next.GetBySlug(ctx, slug)
	p.record(ctx, "product_get_by_slug", start, err)
	return product, err
}

// List records metrics for product list operations.
func (p *productUseCaseWithMetrics) List(
	ctx context.Context,
	filter domain.ProductFilter,
	offset, limit int,
) ([]*domain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx, filter, offset, limit)
	p.record(ctx, "product_list", start, err)
	return products, err
}

// Delete records metrics for product delete operations.
func (p *productUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, id)
	p.record(ctx, "product_delete", start, err)
	return err
}
