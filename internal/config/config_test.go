package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

func TestLoadDefaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, CurveSecp256k1, c.Curve)
	assert.Equal(t, BackendGeneric, c.Backend)
	assert.Equal(t, "info", c.Log.Level)

	curve, err := c.BuildCurve()
	require.NoError(t, err)
	assert.IsType(t, &curves.Weierstrass{}, curve)
	assert.Equal(t, "secp256k1", curve.Params().Name)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ECC_BACKEND", "decred")
	t.Setenv("ECC_LOG_LEVEL", "debug")

	v, err := NewViper("")
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, BackendDecred, c.Backend)
	assert.Equal(t, "debug", c.Log.Level)

	curve, err := c.BuildCurve()
	require.NoError(t, err)
	assert.IsType(t, &curves.Secp256k1{}, curve)
}

func TestLoadCustomCurveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ecc.yaml")
	yaml := `curve: custom
params:
  name: toy43
  p: "43"
  a: "0"
  b: "7"
  gx: "2"
  gy: "12"
  n: "0x1f"
  h: "1"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	v, err := NewViper(path)
	require.NoError(t, err)
	c, err := Load(v)
	require.NoError(t, err)

	curve, err := c.BuildCurve()
	require.NoError(t, err)
	params := curve.Params()
	assert.Equal(t, "toy43", params.Name)
	assert.Equal(t, int64(31), params.N.Int64())
}

func TestLoadInvalid(t *testing.T) {
	t.Run("unknown curve", func(t *testing.T) {
		v, err := NewViper("")
		require.NoError(t, err)
		v.Set("curve", "p-256")
		_, err = Load(v)
		assert.Error(t, err)
	})

	t.Run("decred with custom curve", func(t *testing.T) {
		v, err := NewViper("")
		require.NoError(t, err)
		v.Set("curve", "custom")
		v.Set("backend", "decred")
		_, err = Load(v)
		assert.Error(t, err)
	})

	t.Run("custom curve failing validation", func(t *testing.T) {
		v, err := NewViper("")
		require.NoError(t, err)
		v.Set("curve", "custom")
		v.Set("params.p", "43")
		v.Set("params.a", "0")
		v.Set("params.b", "7")
		v.Set("params.gx", "2")
		v.Set("params.gy", "13")
		v.Set("params.n", "31")
		c, err := Load(v)
		require.NoError(t, err)

		_, err = c.BuildCurve()
		assert.ErrorIs(t, err, curves.ErrDomainParameter)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
