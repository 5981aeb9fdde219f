package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/metrics"
)

const tracerName = "jurisdiction_gateway/gateway"

// InstrumentedGateway decorates a gateway with metrics, tracing and logs.
type InstrumentedGateway struct {
	inner  port.ContractGateway
	tracer trace.Tracer
	logger port.Logger
}

// NewInstrumentedGateway wraps inner using the global tracer provider.
func NewInstrumentedGateway(inner port.ContractGateway, logger port.Logger) *InstrumentedGateway {
	return NewInstrumentedGatewayWithProvider(inner, otel.GetTracerProvider(), logger)
}

// NewInstrumentedGatewayWithProvider wraps inner using a specific tracer provider.
func NewInstrumentedGatewayWithProvider(inner port.ContractGateway, provider trace.TracerProvider, logger port.Logger) *InstrumentedGateway {
	return &InstrumentedGateway{
		inner:  inner,
		tracer: provider.Tracer(tracerName),
		logger: logger,
	}
}

// Invoke delegates to the wrapped gateway and returns exactly what it returned.
func (g *InstrumentedGateway) Invoke(
	ctx context.Context,
	descriptor entity.ContractDescriptor,
	request entity.CallRequest,
	netCtx port.NetworkContext,
) (entity.CallResult, error) {
	ctx, span := g.tracer.Start(ctx, "gateway.invoke", trace.WithAttributes(
		attribute.String("contract", descriptor.Label()),
		attribute.String("operation", request.Operation),
		attribute.Bool("mutating", request.Mutating),
		attribute.String("chain_id", netCtx.ChainID),
	))
	defer span.End()

	start := time.Now()
	result, err := g.inner.Invoke(ctx, descriptor, request, netCtx)
	elapsed := time.Since(start)

	outcome := entity.ErrorOutcome(err)
	metrics.GatewayInvocations.WithLabelValues(descriptor.Label(), request.Operation, request.Kind(), outcome).Inc()
	metrics.GatewayInvocationDuration.WithLabelValues(request.Kind()).Observe(elapsed.Seconds())
	span.SetAttributes(attribute.String("outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.logger.Warn("Contract invocation failed",
			"contract", descriptor.Label(), "address", descriptor.Address, "operation", request.Operation,
			"kind", request.Kind(), "outcome", outcome, "error", err)
		return result, err
	}

	if result.Tx != nil {
		span.SetAttributes(attribute.String("tx_hash", result.Tx.Hash().Hex()))
		g.logger.Debug("Transaction submitted",
			"contract", descriptor.Label(), "operation", request.Operation, "tx_hash", result.Tx.Hash().Hex(),
			"duration", elapsed)
	} else {
		g.logger.Debug("Contract read completed",
			"contract", descriptor.Label(), "operation", request.Operation, "values", len(result.Values),
			"duration", elapsed)
	}
	return result, nil
}
