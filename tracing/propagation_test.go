package tracing

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

var _ = Describe("Propagation", func() {
	pgtr := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	otel.SetTextMapPropagator(pgtr)
	otel.SetTracerProvider(tracesdk.NewTracerProvider())

	It("injects the active span into a header map", func() {
		ctx, span := otel.Tracer("client").Start(context.Background(), "request")
		defer span.End()

		hdr := make(map[string]string)
		InjectHeaders(ctx, hdr)
		Expect(hdr).To(HaveKey("traceparent"))
	})

	It("extracts an injected span as the parent of a new one", func() {
		ctx, pspan := otel.Tracer("client").Start(context.Background(), "pspan")
		defer pspan.End()

		hdr := make(map[string]string)
		InjectHeaders(ctx, hdr)

		ctx2 := ExtractHeaders(context.Background(), hdr)
		_, cspan := otel.Tracer("server").Start(ctx2, "cspan")
		defer cspan.End()

		parentSpanID := cspan.(tracesdk.ReadOnlySpan).Parent().SpanID()
		Expect(pspan.SpanContext().SpanID()).To(Equal(parentSpanID))
	})

	It("leaves headers untouched without an active span", func() {
		hdr := make(map[string]string)
		InjectHeaders(context.Background(), hdr)
		Expect(hdr).To(BeEmpty())
	})
})
