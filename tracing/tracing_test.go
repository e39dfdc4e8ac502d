package tracing

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

var _ = Describe("GetTracer", func() {
	BeforeEach(func() {
		prev := otel.GetTracerProvider()
		otel.SetTracerProvider(tracesdk.NewTracerProvider())
		DeferCleanup(func() {
			otel.SetTracerProvider(prev)
		})
	})

	It("hands out a recording tracer by default", func() {
		ctx := context.Background()
		_, span := GetTracer(ctx, "client").Start(ctx, "op")
		defer span.End()
		Expect(span.IsRecording()).To(BeTrue())
	})

	It("hands out a no-op tracer for ignored contexts", func() {
		ctx := IgnoredContext(context.Background())
		_, span := GetTracer(ctx, "client").Start(ctx, "op")
		defer span.End()
		Expect(span.IsRecording()).To(BeFalse())
		Expect(span.SpanContext().IsValid()).To(BeFalse())
	})
})
