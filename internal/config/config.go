// Package config loads the curve selection and logging settings for the
// command line tools from flags, environment variables (prefix ECC_) and an
// optional YAML config file.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
)

// Prefix is the environment variable prefix, e.g. ECC_CURVE.
const Prefix = "ECC"

// Curve names.
const (
	CurveSecp256k1 = "secp256k1"
	CurveCustom    = "custom"
)

// Arithmetic backends.
const (
	BackendGeneric = "generic"
	BackendDecred  = "decred"
)

// Config is the top level configuration.
type Config struct {
	Curve   string       `mapstructure:"curve"`
	Backend string       `mapstructure:"backend"`
	Log     Log          `mapstructure:"log"`
	Params  CustomParams `mapstructure:"params"`
}

// Log configures the logger.
type Log struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// CustomParams describes the domain parameters used when Curve is "custom".
// Values are decimal, or hexadecimal with a 0x prefix.
type CustomParams struct {
	Name string `mapstructure:"name"`
	P    string `mapstructure:"p"`
	A    string `mapstructure:"a"`
	B    string `mapstructure:"b"`
	Gx   string `mapstructure:"gx"`
	Gy   string `mapstructure:"gy"`
	N    string `mapstructure:"n"`
	H    string `mapstructure:"h"`
}

var defaults = map[string]interface{}{
	"curve":       CurveSecp256k1,
	"backend":     BackendGeneric,
	"log.level":   "info",
	"log.json":    false,
	"params.name": "custom",
	"params.p":    "",
	"params.a":    "",
	"params.b":    "",
	"params.gx":   "",
	"params.gy":   "",
	"params.n":    "",
	"params.h":    "1",
}

// NewViper returns a viper instance with defaults and environment binding in
// place. If configFile is not empty it is read as well.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(Prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: reading %s", configFile)
		}
	}
	return v, nil
}

// Load decodes v into a Config and checks the enumerated fields.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: decoding")
	}

	c.Curve = strings.ToLower(strings.TrimSpace(c.Curve))
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))

	switch c.Curve {
	case CurveSecp256k1, CurveCustom:
	default:
		return nil, errors.Errorf("config: unknown curve %q", c.Curve)
	}
	switch c.Backend {
	case BackendGeneric, BackendDecred:
	default:
		return nil, errors.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Backend == BackendDecred && c.Curve != CurveSecp256k1 {
		return nil, errors.Errorf("config: backend %q only supports %s", BackendDecred, CurveSecp256k1)
	}
	return &c, nil
}

// BuildCurve constructs the configured curve engine. Custom parameters are
// validated here, once.
func (c *Config) BuildCurve() (curves.Curve, error) {
	if c.Curve == CurveCustom {
		p := c.Params
		params, err := curves.ParamsFromStrings(p.Name, p.P, p.A, p.B, p.Gx, p.Gy, p.N, p.H)
		if err != nil {
			return nil, err
		}
		return curves.NewWeierstrass(params)
	}

	if c.Backend == BackendDecred {
		return curves.NewSecp256k1(), nil
	}
	return curves.NewSecp256k1Weierstrass(), nil
}
