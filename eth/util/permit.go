package util

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// UnlimitedDeadline is the sentinel deadline for permits that never expire.
// The same value must be used when the permit call is assembled, or the
// signed digest will not match.
var UnlimitedDeadline = new(big.Int).Set(math.MaxBig256)

const primaryType = "Permit"

var typesStandard = apitypes.Types{
	"EIP712Domain": {
		{
			Name: "name",
			Type: "string",
		},
		{
			Name: "version",
			Type: "string",
		},
		{
			Name: "chainId",
			Type: "uint256",
		},
		{
			Name: "verifyingContract",
			Type: "address",
		},
	},
	"Permit": {
		{
			Name: "owner",
			Type: "address",
		},
		{
			Name: "spender",
			Type: "address",
		},
		{
			Name: "id",
			Type: "uint256",
		},
		{
			Name: "value",
			Type: "uint256",
		},
		{
			Name: "deadline",
			Type: "uint256",
		},
	},
}

type DomainData struct {
	Name              string
	Version           string
	ChainId           *big.Int
	VerifyingContract common.Address
}

// PermitTypedDataHash computes the EIP-712 digest a token owner must sign to
// authorize a spender to move value units of an edition.
func PermitTypedDataHash(
	domainData DomainData,
	owner common.Address,
	spender common.Address,
	id *big.Int,
	value *big.Int,
	deadline *big.Int,
) ([]byte, error) {

	message := apitypes.TypedDataMessage{
		"owner":    owner.String(),
		"spender":  spender.String(),
		"id":       id.String(),
		"value":    value.String(),
		"deadline": deadline.String(),
	}

	domain := apitypes.TypedDataDomain{
		Name:              domainData.Name,
		Version:           domainData.Version,
		ChainId:           (*math.HexOrDecimal256)(new(big.Int).Set(domainData.ChainId)),
		VerifyingContract: domainData.VerifyingContract.String(),
	}

	typedData := apitypes.TypedData{
		Types:       typesStandard,
		PrimaryType: primaryType,
		Domain:      domain,
		Message:     message,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return nil, err
	}

	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	sighash := crypto.Keccak256(rawData)

	return sighash, nil
}
