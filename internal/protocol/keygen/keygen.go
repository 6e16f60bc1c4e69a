// Package keygen derives key pairs on a curve: it samples a private scalar
// uniformly from [1, n-1] and multiplies the generator by it.
package keygen

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

var one = big.NewInt(1)

// Generator holds the random source used for private keys. One Generator is
// meant to be created per process and shared; reads from the random source
// are serialized so that a reader which is not safe for concurrent use can
// still be shared.
type Generator struct {
	curve  curves.Curve
	logger *zap.Logger

	mu   sync.Mutex
	rand io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source. A nil reader keeps the default,
// crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator returns a key generator for curve.
func NewGenerator(curve curves.Curve, opts ...Option) *Generator {
	g := &Generator{
		curve:  curve,
		logger: zap.NewNop(),
		rand:   rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateKeyPair derives a key pair on curve using random as the source of
// private key material.
func GenerateKeyPair(curve curves.Curve, random io.Reader) (*KeyPair, error) {
	return NewGenerator(curve, WithRand(random)).GenerateKeyPair()
}

// NewPrivateKey draws a scalar uniformly from [1, n-1].
func (g *Generator) NewPrivateKey() (*big.Int, error) {
	n := g.curve.Params().N
	nMinus1 := new(big.Int).Sub(n, one)

	g.mu.Lock()
	k, err := rand.Int(g.rand, nMinus1)
	g.mu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "keygen: reading random source")
	}

	// [0, n-2] -> [1, n-1]
	return k.Add(k, one), nil
}

// GenerateKeyPair samples a private key d and returns (d, d·G).
func (g *Generator) GenerateKeyPair() (*KeyPair, error) {
	d, err := g.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return g.KeyPairFromPrivate(d)
}

// KeyPairFromPrivate computes the public point for an existing private key.
func (g *Generator) KeyPairFromPrivate(d *big.Int) (*KeyPair, error) {
	params := g.curve.Params()
	if err := ValidatePrivateKey(params, d); err != nil {
		return nil, err
	}

	q, err := g.curve.ScalarBaseMult(d)
	if err != nil {
		return nil, errors.WithMessage(err, "keygen: computing public key")
	}
	g.logger.Debug("derived key pair",
		zap.String("curve", params.Name),
		zap.Stringer("public_key", q),
	)

	return &KeyPair{PrivateKey: new(big.Int).Set(d), PublicKey: q}, nil
}

// GenerateBatch derives count independent key pairs. All private keys are
// drawn first from the shared random source; the public points are then
// computed concurrently.
func (g *Generator) GenerateBatch(ctx context.Context, count int) ([]*KeyPair, error) {
	if count < 0 {
		return nil, errors.Errorf("keygen: negative batch size %d", count)
	}

	keys := make([]*big.Int, count)
	for i := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, err := g.NewPrivateKey()
		if err != nil {
			return nil, err
		}
		keys[i] = d
	}

	pairs := make([]*KeyPair, count)
	eg, egCtx := errgroup.WithContext(ctx)
	for i, d := range keys {
		if egCtx.Err() != nil {
			break
		}

		i, d := i, d
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			kp, err := g.KeyPairFromPrivate(d)
			if err != nil {
				return err
			}
			pairs[i] = kp
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ValidatePrivateKey checks that d lies in [1, n-1].
func ValidatePrivateKey(params *curves.Params, d *big.Int) error {
	if d == nil {
		return &curves.InvalidScalarError{Reason: "private key is nil"}
	}
	if d.Sign() <= 0 || d.Cmp(params.N) >= 0 {
		return &curves.InvalidScalarError{
			Scalar: new(big.Int).Set(d),
			Reason: "private key outside [1, n-1]",
		}
	}
	return nil
}
