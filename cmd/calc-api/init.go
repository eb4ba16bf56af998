package main

import (
	"context"

	"remote-calc/internal/calculator"
	"remote-calc/internal/observability"
)

// initMetrics installs the meter provider and then the calculator's
// instruments, which must be created against it.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
