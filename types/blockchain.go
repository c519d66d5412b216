package types

import "slices"

// AssetKind is the kind of asset a bridge strategy moves
type AssetKind string

// List of AssetKind a bridge strategy can be registered for
const (
	AssetKindNative  = AssetKind("native")
	AssetKindERC20   = AssetKind("erc20")
	AssetKindERC1155 = AssetKind("erc1155")
)

var SupportedAssetKinds = []AssetKind{
	AssetKindNative,
	AssetKindERC20,
	AssetKindERC1155,
}

func (kind AssetKind) Valid() bool {
	return slices.Contains(SupportedAssetKinds, kind)
}
