package types

// Address is a hex encoded account or contract address
type Address string

// TxHash is the hash of a submitted transaction, hex encoded with 0x prefix
type TxHash string

func (hash TxHash) String() string {
	return string(hash)
}
