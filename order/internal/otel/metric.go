package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Alturino/storefront/internal/constants"
)

var Meter = otel.Meter(
	constants.AppOrderService,
	metric.WithInstrumentationAttributes(semconv.ServiceName(constants.AppOrderService)),
)

// OrdersCreated is exported through the OTLP meter provider when otel is enabled.
var OrdersCreated, _ = Meter.Int64Counter(
	"storefront.orders.created",
	metric.WithDescription("Number of orders placed."),
	metric.WithUnit("{order}"),
)
