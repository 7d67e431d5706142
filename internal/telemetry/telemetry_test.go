package telemetry

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barbershop-admin/internal/config"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	shutdown, enabled := Setup(&config.Config{}, "barbershop-admin")
	if enabled {
		t.Fatal("tracing should be disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
}
