package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/inquiry/domain"
	"github.com/portalaudio/cms/internal/metrics"
)

// inquiryUseCaseWithMetrics decorates InquiryUseCase with metrics instrumentation.
type inquiryUseCaseWithMetrics struct {
	next    InquiryUseCase
	metrics metrics.BusinessMetrics
}

// NewInquiryUseCaseWithMetrics wraps an InquiryUseCase with metrics recording.
func NewInquiryUseCaseWithMetrics(useCase InquiryUseCase, m metrics.BusinessMetrics) InquiryUseCase {
	return &inquiryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *inquiryUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "inquiry", operation, status)
	i.metrics.RecordDuration(ctx, "inquiry", operation, time.Since(start), status)
}

// Submit records metrics for public inquiry submissions.
func (i *inquiryUseCaseWithMetrics) Submit(ctx context.Context, input SubmitInquiryInput) (*domain.Inquiry, error) {
	start := time.Now()
	inquiry, err := i.next.Submit(ctx, input)
	i.record(ctx, "inquiry_submit", start, err)
	return inquiry, err
}

// UpdateStatus records metrics for inquiry status transitions.
func (i *inquiryUseCaseWithMetrics) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
) (*domain.Inquiry, error) {
	start := time.Now()
	inquiry, err := i.next.UpdateStatus(ctx, id, status)
	i.record(ctx, "inquiry_update_status", start, err)
	return inquiry, err
}

// Get records metrics for inquiry retrieval operations.
func (i *inquiryUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	start := time.Now()
	inquiry, err := i.next.Get(ctx, id)
	i.record(ctx, "inquiry_get", start, err)
	return inquiry, err
}

// List records metrics for inquiry list operations.
func (i *inquiryUseCaseWithMetrics) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Inquiry, error) {
	start := time.Now()
	inquiries, err := i.next.List(ctx, filter, offset, limit)
	i.record(ctx, "inquiry_list", start, err)
	return inquiries, err
}

// Delete records metrics for inquiry delete operations.
func (i *inquiryUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := i.next.Delete(ctx, id)
	i.record(ctx, "inquiry_delete", start, err)
	return err
}
