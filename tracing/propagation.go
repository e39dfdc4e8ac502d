package tracing

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

// headerCarrier adapts a flat header map to the otel TextMapCarrier.
type headerCarrier map[string]string

func (c headerCarrier) Get(key string) string { return c[key] }
func (c headerCarrier) Set(key, value string) { c[key] = value }
func (c headerCarrier) Keys() []string        { return lo.Keys(c) }

// InjectHeaders writes the active span context of ctx (traceparent and
// friends) into hdr. With no global propagator installed this is a
// no-op.
func InjectHeaders(ctx context.Context, hdr map[string]string) {
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier(hdr))
}

// ExtractHeaders returns ctx extended with any span context carried in
// hdr.
func ExtractHeaders(ctx context.Context, hdr map[string]string) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, headerCarrier(hdr))
}
