package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	xc "github.com/openweb3-io/bridgekit/types"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "BRIDGE"

//go:embed defaults.yaml
var defaultsData []byte

type Config struct {
	// Network is the fallback for chains that do not name their own
	Network string                     `mapstructure:"network" yaml:"network"`
	Chain   string                     `mapstructure:"chain" yaml:"chain"`
	Bridge  xc.BridgeConfig            `mapstructure:"bridge" yaml:"bridge"`
	Chains  map[string]*xc.ChainConfig `mapstructure:"chains" yaml:"chains"`
}

// Defaults parses the embedded configuration only
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsData, cfg); err != nil {
		return nil, errors.Wrap(err, "invalid embedded defaults")
	}
	return cfg, nil
}

// NewViper returns a viper instance seeded with the embedded defaults,
// merged with the file at path if any, and overridden by BRIDGE_ env variables.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultsData)); err != nil {
		return nil, errors.Wrap(err, "invalid embedded defaults")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v, nil
}

func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// chainKeys are the per-chain settings that may be set from the environment
// even when no file mentions them, e.g. BRIDGE_CHAINS_SEPOLIA_VAULT_ADDRESS
var chainKeys = []string{
	"name",
	"network",
	"chain_id",
	"url",
	"vault_address",
	"decimals",
	"bridge.no_token_deployed_gas_limit",
	"bridge.no_owner_gas_limit",
}

func bindChainEnv(v *viper.Viper) error {
	for name := range v.GetStringMap("chains") {
		for _, key := range chainKeys {
			if err := v.BindEnv("chains." + name + "." + key); err != nil {
				return errors.Wrapf(err, "could not bind %s.%s", name, key)
			}
		}
	}
	return nil
}

func FromViper(v *viper.Viper) (*Config, error) {
	if err := bindChainEnv(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode config")
	}
	for name, chain := range cfg.Chains {
		if chain.Name == "" {
			chain.Name = name
		}
	}
	return cfg, nil
}

// GetChain returns a copy of the named chain with the global network and bridge gas
// limits filled in where the chain does not set its own. An empty name selects the default chain.
func (c *Config) GetChain(name string) (*xc.ChainConfig, error) {
	if name == "" {
		name = c.Chain
	}
	chain, ok := c.Chains[name]
	if !ok {
		return nil, fmt.Errorf("chain %q is not configured, known chains: %s", name, strings.Join(c.ChainNames(), ", "))
	}

	resolved := *chain
	if resolved.Network == "" {
		resolved.Network = c.Network
	}
	if resolved.Bridge.NoTokenDeployedGasLimit == 0 {
		resolved.Bridge.NoTokenDeployedGasLimit = c.Bridge.NoTokenDeployedGasLimit
	}
	if resolved.Bridge.NoOwnerGasLimit == 0 {
		resolved.Bridge.NoOwnerGasLimit = c.Bridge.NoOwnerGasLimit
	}
	return &resolved, nil
}

func (c *Config) ChainNames() []string {
	names := make([]string, 0, len(c.Chains))
	for name := range c.Chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump renders the configuration back to YAML
func (c *Config) Dump() ([]byte, error) {
	return yaml.Marshal(c)
}
