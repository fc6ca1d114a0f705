package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic recording created", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordCreated(context.Background(), "order.created", nil)
			m.RecordCreated(context.Background(), "", errors.New("test"))
		})
	})

	t.Run("does not panic recording validation", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordValidation(context.Background(), "order.created", time.Millisecond, OutcomeAccepted)
			m.RecordValidation(context.Background(), "", 0, OutcomeRejected)
		})
	})
}

func TestNoopSpanManager(t *testing.T) {
	s := NoopSpanManager{}
	ctx := context.Background()

	t.Run("spans are inert", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sameCtx, span := s.StartValidationSpan(ctx, "order.created")
			assert.Equal(t, ctx, sameCtx)
			s.EndSpanWithError(span, errors.New("test"))

			_, span = s.StartFactorySpan(ctx, "payment.failed")
			s.EndSpanWithError(span, nil)

			s.AddSpanEvent(ctx, "noted", attribute.String("k", "v"))
		})
	})
}
