package utils

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// ValidateAddress checks an address against the ecosystem's format:
// 0x-prefixed 20-byte hex for EVM, base58 ed25519 public key for Solana.
func ValidateAddress(address string, eco types.Ecosystem) error {
	if address == "" {
		return fmt.Errorf("address cannot be empty")
	}

	switch eco {
	case types.EcosystemEVM:
		if !common.IsHexAddress(address) {
			return fmt.Errorf("invalid EVM address: %s", address)
		}
	case types.EcosystemSolana:
		if _, err := solana.PublicKeyFromBase58(address); err != nil {
			return fmt.Errorf("invalid Solana address: %w", err)
		}
	default:
		return fmt.Errorf("unsupported ecosystem: %s", eco)
	}

	return nil
}

// ChecksumAddress normalizes an EVM address to its EIP-55 checksummed
// form. Non-EVM addresses pass through unchanged.
func ChecksumAddress(address string, eco types.Ecosystem) string {
	if eco == types.EcosystemEVM && common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}
