package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParams(t *testing.T) {
	out, err := run(t, "params")
	require.NoError(t, err)
	assert.Contains(t, out, "name: secp256k1")
	assert.Contains(t, out, "G: (55066263022277343669578718895168534326250603453777594175500187360389116729240, 32670510020758816978083085130507043184471273380659243275938904335757337482424)")
	assert.Contains(t, out, "h: 1")
}

func TestKeygen(t *testing.T) {
	for _, backend := range []string{"generic", "decred"} {
		out, err := run(t, "keygen", "--count", "3", "--backend", backend)
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "private: "))
		assert.Equal(t, 3, strings.Count(out, "encoded: 0"))
	}
}

func TestExchange(t *testing.T) {
	out, err := run(t, "exchange")
	require.NoError(t, err)
	assert.Contains(t, out, "shared secret: ")
	assert.NotContains(t, out, "derived key: ")

	out, err = run(t, "exchange", "--derive", "16", "--backend", "decred")
	require.NoError(t, err)
	assert.Regexp(t, `derived key: [0-9a-f]{32}\n`, out)

	_, err = run(t, "exchange", "--derive", "100000")
	assert.Error(t, err)
}

func TestMultiply(t *testing.T) {
	out, err := run(t, "multiply", "-k", "0")
	require.NoError(t, err)
	assert.Equal(t, "infinity\n", out)

	out, err = run(t, "multiply", "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "(89565891926547004231252920425935692360644145829622209833684329913297188986597, ")

	// 0x02 || x(G)
	out, err = run(t, "multiply", "-k", "1",
		"--point", "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)
	assert.Contains(t, out, "(55066263022277343669578718895168534326250603453777594175500187360389116729240, ")

	_, err = run(t, "multiply", "-k", "-1")
	assert.Error(t, err)

	_, err = run(t, "multiply", "-k", "zz")
	assert.Error(t, err)
}

func TestCustomCurveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.yaml")
	cfg := "curve: custom\nparams:\n  name: toy43\n  p: \"43\"\n  a: \"0\"\n  b: \"7\"\n  gx: \"2\"\n  gy: \"12\"\n  n: \"31\"\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := run(t, "--config", path, "multiply", "-k", "5")
	require.NoError(t, err)
	assert.Equal(t, "(12, 12)\n", out)

	_, err = run(t, "--config", path, "--backend", "decred", "params")
	assert.Error(t, err)
}
