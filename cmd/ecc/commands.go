package main

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-ecc/internal/protocol/agreement"
	"github.com/smallyu/go-ecc/internal/protocol/keygen"
)

func newParamsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the domain parameters and generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := e.curve.Params()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name: %s\n", params.Name)
			fmt.Fprintf(out, "p: %s\n", params.P)
			fmt.Fprintf(out, "a: %s\n", params.A)
			fmt.Fprintf(out, "b: %s\n", params.B)
			fmt.Fprintf(out, "G: %s\n", params.G)
			fmt.Fprintf(out, "n: %s\n", params.N)
			fmt.Fprintf(out, "h: %s\n", params.H)
			return nil
		},
	}
}

func newKeygenCmd(e *env) *cobra.Command {
	var (
		count      int
		compressed bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate key pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := keygen.NewGenerator(e.curve, keygen.WithLogger(e.logger.Named("keygen")))
			pairs, err := gen.GenerateBatch(cmd.Context(), count)
			if err != nil {
				return err
			}

			params := e.curve.Params()
			out := cmd.OutOrStdout()
			for _, kp := range pairs {
				fmt.Fprintf(out, "private: %s\n", kp.PrivateKey.Text(16))
				fmt.Fprintf(out, "public: %s\n", kp.PublicKey)
				fmt.Fprintf(out, "encoded: %s\n", hex.EncodeToString(curves.Marshal(params, kp.PublicKey, compressed)))
			}
			e.logger.Info("generated key pairs", zap.Int("count", len(pairs)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of key pairs")
	cmd.Flags().BoolVar(&compressed, "compressed", true, "use compressed SEC 1 encoding")
	return cmd
}

func newExchangeCmd(e *env) *cobra.Command {
	var (
		info   string
		length int
	)

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Run a local two-party Diffie-Hellman exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := e.logger.Named("exchange")
			gen := keygen.NewGenerator(e.curve, keygen.WithLogger(logger))

			alice, err := gen.GenerateKeyPair()
			if err != nil {
				return err
			}
			bob, err := gen.GenerateKeyPair()
			if err != nil {
				return err
			}

			for name, kp := range map[string]*keygen.KeyPair{"alice": alice, "bob": bob} {
				proof, err := schnorr.Prove(e.curve, kp.PrivateKey, kp.PublicKey, nil)
				if err != nil {
					return err
				}
				if !proof.Verify(e.curve, kp.PublicKey) {
					return errors.Errorf("%s: key ownership proof rejected", name)
				}
				logger.Debug("key ownership verified", zap.String("party", name))
			}

			s1, err := agreement.ComputeSharedSecret(e.curve, alice.PrivateKey, bob.PublicKey)
			if err != nil {
				return err
			}
			s2, err := agreement.ComputeSharedSecret(e.curve, bob.PrivateKey, alice.PublicKey)
			if err != nil {
				return err
			}
			if !s1.Equal(s2) {
				logger.Error("shared points differ", zap.Stringer("alice", s1), zap.Stringer("bob", s2))
				return errors.New("shared secrets do not match")
			}

			key, err := agreement.SharedKey(e.curve.Params(), s1)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "alice public: %s\n", alice.PublicKey)
			fmt.Fprintf(out, "bob public: %s\n", bob.PublicKey)
			fmt.Fprintf(out, "shared secret: %s\n", hex.EncodeToString(key[:]))

			if length > 0 {
				derived, err := agreement.DeriveKey(e.curve.Params(), s1, nil, []byte(info), length)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "derived key: %s\n", hex.EncodeToString(derived))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "derive", 0, "also derive this many bytes with HKDF-SHA256")
	cmd.Flags().StringVar(&info, "info", "go-ecc", "HKDF info string")
	return cmd
}

func newMultiplyCmd(e *env) *cobra.Command {
	var (
		scalar string
		point  string
	)

	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply the generator, or a SEC 1 encoded point, by a scalar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := new(big.Int).SetString(scalar, 0)
			if !ok {
				return errors.Errorf("cannot parse scalar %q", scalar)
			}

			params := e.curve.Params()
			base := params.G
			if point != "" {
				raw, err := hex.DecodeString(point)
				if err != nil {
					return errors.Wrap(err, "decoding point")
				}
				base, err = curves.Unmarshal(params, raw)
				if err != nil {
					return err
				}
			}

			r, err := e.curve.ScalarMult(base, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().StringVarP(&scalar, "scalar", "k", "", "scalar, decimal or 0x-prefixed hex")
	cmd.Flags().StringVar(&point, "point", "", "hex SEC 1 point, defaults to the generator")
	_ = cmd.MarkFlagRequired("scalar")
	return cmd
}
