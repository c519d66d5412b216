package types

import "fmt"

// BridgeConfig holds the static gas limits forwarded to the destination chain executor.
type BridgeConfig struct {
	// gas limit used when the token has no representation on the destination chain yet
	NoTokenDeployedGasLimit uint64 `mapstructure:"no_token_deployed_gas_limit" yaml:"no_token_deployed_gas_limit"`
	// gas limit used when a processing fee is paid for an already deployed token
	NoOwnerGasLimit uint64 `mapstructure:"no_owner_gas_limit" yaml:"no_owner_gas_limit"`
}

type ChainConfig struct {
	Name         string       `mapstructure:"name" yaml:"name"`
	Network      string       `mapstructure:"network,omitempty" yaml:"network,omitempty"`
	ChainID      int64        `mapstructure:"chain_id" yaml:"chain_id"`
	URL          string       `mapstructure:"url" yaml:"url"`
	VaultAddress Address      `mapstructure:"vault_address" yaml:"vault_address"`
	Decimals     int32        `mapstructure:"decimals,omitempty" yaml:"decimals,omitempty"`
	Bridge       BridgeConfig `mapstructure:"bridge" yaml:"bridge"`
}

func (c *ChainConfig) String() string {
	return fmt.Sprintf(
		"ChainConfig(name=%s network=%s chain_id=%d url=%s vault=%s)",
		c.Name,
		c.Network,
		c.ChainID,
		c.URL,
		c.VaultAddress,
	)
}
