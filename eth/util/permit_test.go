package util

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/assert"
)

func testDomain() DomainData {
	return DomainData{
		Name:              "EditionContract",
		Version:           "1",
		ChainId:           big.NewInt(137),
		VerifyingContract: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	}
}

func TestUnlimitedDeadline(t *testing.T) {
	assert.Equal(t, 0, UnlimitedDeadline.Cmp(math.MaxBig256))
}

func TestPermitTypedDataHash(t *testing.T) {
	owner := common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	spender := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	t.Run("Is 32 Bytes", func(t *testing.T) {
		hash, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)

		assert.Nil(t, err)
		assert.Equal(t, 32, len(hash))
	})

	t.Run("Is Deterministic", func(t *testing.T) {
		first, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)

		second, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Binds Every Field", func(t *testing.T) {
		base, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)

		otherOwner, err := PermitTypedDataHash(testDomain(), spender, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)
		assert.NotEqual(t, base, otherOwner)

		otherId, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(8), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)
		assert.NotEqual(t, base, otherId)

		otherValue, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(7), big.NewInt(2), UnlimitedDeadline)
		assert.Nil(t, err)
		assert.NotEqual(t, base, otherValue)
	})

	t.Run("Binds The Domain", func(t *testing.T) {
		base, err := PermitTypedDataHash(testDomain(), owner, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)

		otherChain := testDomain()
		otherChain.ChainId = big.NewInt(80002)
		onOtherChain, err := PermitTypedDataHash(otherChain, owner, spender, big.NewInt(7), big.NewInt(1), UnlimitedDeadline)
		assert.Nil(t, err)

		assert.NotEqual(t, base, onOtherChain)
	})
}
