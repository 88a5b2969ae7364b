package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailtail/internal/routes"
	dErrors "trailtail/pkg/domain-errors"
)

// routeGenerator is the narrow view the transport layer resolves against.
type routeGenerator interface {
	Generate(ctx context.Context, req routes.GenerateRequest) (*routes.Route, error)
}

func newRoutesService() *routes.Service {
	return routes.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegister(t *testing.T) {
	t.Run("nil instance is a configuration error", func(t *testing.T) {
		r := New()
		err := r.Register(CapabilityRoutes, nil)
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeConfiguration, dErrors.CodeOf(err))
	})

	t.Run("rebinding a capability fails", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(CapabilityRoutes, newRoutesService()))
		err := r.Register(CapabilityRoutes, newRoutesService())
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeConfiguration, dErrors.CodeOf(err))
	})

	t.Run("capabilities lists every registration", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(CapabilityRoutes, newRoutesService()))
		require.NoError(t, r.Register(CapabilitySafety, newRoutesService()))
		assert.ElementsMatch(t, []Capability{CapabilityRoutes, CapabilitySafety}, r.Capabilities())
	})
}

func TestResolve(t *testing.T) {
	t.Run("returns the registered instance typed", func(t *testing.T) {
		r := New()
		svc := newRoutesService()
		require.NoError(t, r.Register(CapabilityRoutes, svc))

		got, err := Resolve[routeGenerator](r, CapabilityRoutes)
		require.NoError(t, err)
		assert.Same(t, svc, got)
	})

	t.Run("missing capability is a configuration error", func(t *testing.T) {
		r := New()
		_, err := Resolve[routeGenerator](r, CapabilityNarratives)
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeConfiguration, dErrors.CodeOf(err))
	})

	t.Run("type mismatch is a configuration error", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(CapabilityRoutes, "not a generator"))

		_, err := Resolve[routeGenerator](r, CapabilityRoutes)
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeConfiguration, dErrors.CodeOf(err))
	})
}
