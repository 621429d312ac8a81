package routecfg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonstack/relay/resolver"
	"github.com/halcyonstack/relay/router"
)

type recordingController struct {
	calls []string
}

func (c *recordingController) record(name string, params []router.Param) {
	for _, p := range params {
		name += ":" + p.Value
	}
	c.calls = append(c.calls, name)
}

func (c *recordingController) Require(_ context.Context, params []router.Param) error {
	c.record("require", params)
	return nil
}

func (c *recordingController) Show(_ context.Context, params []router.Param) error {
	c.record("show", params)
	return nil
}

func (c *recordingController) Check(_ context.Context, params []router.Param) error {
	c.record("check", params)
	return nil
}

func (c *recordingController) Missing(_ context.Context, params []router.Param) error {
	c.record("missing", params)
	return nil
}

const sampleConfig = `
before:
  - methods: "*"
    pattern: /users(/.*)?
    handler: App::Require

routes:
  - pattern: /users/{id}
    handler: App::Show

mounts:
  - prefix: /api
    mounts:
      - prefix: /v1
        routes:
          - pattern: /health
            handler: App::Check

not_found:
  - handler: App::Missing
`

func newTestRouter(t *testing.T) (*router.Router, *recordingController) {
	t.Helper()

	cfg, err := Load([]byte(sampleConfig))
	require.NoError(t, err)

	ctrl := &recordingController{}
	reg := resolver.NewRegistry()
	reg.Register("App", ctrl)

	r := router.NewRouter()
	r.SetResolver(reg)
	cfg.Apply(r)

	return r, ctrl
}

func TestLoadApply(t *testing.T) {
	t.Run("before and route entries dispatch in document order", func(t *testing.T) {
		r, ctrl := newTestRouter(t)

		handled, err := r.Run(context.Background(), router.Request{Method: "GET", Path: "/users/42"}, nil)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, []string{"require:42", "show:42"}, ctrl.calls)
	})

	t.Run("nested mounts compose prefixes", func(t *testing.T) {
		r, ctrl := newTestRouter(t)

		handled, err := r.Run(context.Background(), router.Request{Method: "GET", Path: "/api/v1/health"}, nil)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, []string{"check"}, ctrl.calls)
	})

	t.Run("default fallback comes from the document", func(t *testing.T) {
		r, ctrl := newTestRouter(t)

		handled, err := r.Run(context.Background(), router.Request{Method: "GET", Path: "/nowhere"}, nil)
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Equal(t, []string{"missing"}, ctrl.calls)
	})

	t.Run("methods default to GET", func(t *testing.T) {
		r, ctrl := newTestRouter(t)

		handled, err := r.Run(context.Background(), router.Request{Method: "POST", Path: "/users/42"}, nil)
		require.NoError(t, err)
		assert.False(t, handled)
		// The wildcard before entry still ran; the GET-only route did not.
		assert.Equal(t, []string{"require:42", "missing"}, ctrl.calls)
	})
}

func TestLoadValidation(t *testing.T) {
	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Load([]byte("routes: {nope"))
		assert.Error(t, err)
	})

	t.Run("rejects a route without a pattern", func(t *testing.T) {
		_, err := Load([]byte("routes:\n  - handler: App::Show\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects a route without a handler", func(t *testing.T) {
		_, err := Load([]byte("routes:\n  - pattern: /x\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects a mount without a prefix", func(t *testing.T) {
		_, err := Load([]byte("mounts:\n  - routes:\n      - pattern: /x\n        handler: A::B\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects a fallback without a handler", func(t *testing.T) {
		_, err := Load([]byte("not_found:\n  - pattern: /x\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("accepts an empty document", func(t *testing.T) {
		cfg, err := Load([]byte(""))
		require.NoError(t, err)

		r := router.NewRouter()
		cfg.Apply(r)

		handled, err := r.Run(context.Background(), router.Request{Method: "GET", Path: "/"}, nil)
		require.NoError(t, err)
		assert.False(t, handled)
	})
}
