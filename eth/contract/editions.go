package contract

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/eth/util"
)

// EditionsABI is the input ABI of the deployed editions proxy contract.
const EditionsABI = `[{"inputs":[{"internalType":"uint256","name":"id","type":"uint256"},{"components":[{"internalType":"address","name":"creator","type":"address"},{"internalType":"string","name":"collection","type":"string"},{"internalType":"string","name":"uri","type":"string"},{"internalType":"string","name":"description","type":"string"},{"internalType":"string","name":"imageUri","type":"string"}],"internalType":"struct EditionContract.EditionInfo","name":"info","type":"tuple"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"address","name":"feeReceiver","type":"address"},{"internalType":"uint96","name":"feeNumerator","type":"uint96"}],"name":"createEdition","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"uint256","name":"id","type":"uint256"},{"components":[{"internalType":"address","name":"creator","type":"address"},{"internalType":"string","name":"collection","type":"string"},{"internalType":"string","name":"uri","type":"string"},{"internalType":"string","name":"description","type":"string"},{"internalType":"string","name":"imageUri","type":"string"}],"internalType":"struct EditionContract.EditionInfo","name":"info","type":"tuple"}],"name":"editEdition","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},{"inputs":[{"internalType":"address","name":"owner","type":"address"},{"internalType":"address","name":"spender","type":"address"},{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"uint256","name":"value","type":"uint256"},{"internalType":"uint256","name":"deadline","type":"uint256"},{"internalType":"uint8","name":"v","type":"uint8"},{"internalType":"bytes32","name":"r","type":"bytes32"},{"internalType":"bytes32","name":"s","type":"bytes32"}],"name":"permit","outputs":[],"stateMutability":"nonpayable","type":"function"},{"inputs":[{"internalType":"address","name":"from","type":"address"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"bytes","name":"data","type":"bytes"}],"name":"safeTransferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"}]`

// EditionInfo mirrors the contract's EditionInfo tuple.
type EditionInfo struct {
	Creator     common.Address
	Collection  string
	Uri         string
	Description string
	ImageUri    string
}

type EditionsContract interface {
	Address() common.Address
	Owner() (common.Address, error)
	BuildCreateEdition(id *big.Int, info EditionInfo, to common.Address, amount *big.Int, feeReceiver common.Address, feeNumerator *big.Int) (*types.Transaction, error)
	BuildEditEdition(id *big.Int, info EditionInfo) (*types.Transaction, error)
	BuildSafeTransferFrom(from common.Address, to common.Address, id *big.Int, amount *big.Int) (*types.Transaction, error)
	BuildPermit(owner common.Address, spender common.Address, id *big.Int, value *big.Int, deadline *big.Int, v uint8, r [32]byte, s [32]byte) (*types.Transaction, error)
	PermitTokenTransferHash(owner common.Address, spender common.Address, id *big.Int, value *big.Int) ([]byte, error)
}

type Editions struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
	chainID  *big.Int
}

func NewEditions(address common.Address, backend bind.ContractBackend, chainID *big.Int) (*Editions, error) {
	parsed, err := abi.JSON(strings.NewReader(EditionsABI))
	if err != nil {
		return nil, err
	}
	bound := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return &Editions{
		address:  address,
		abi:      parsed,
		contract: bound,
		chainID:  chainID,
	}, nil
}

func (x *Editions) Address() common.Address {
	return x.address
}

// Owner reads the current contract owner. The value is read live on every
// call; an ownership transfer is picked up by the next operation.
func (x *Editions) Owner() (common.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Ethereum.RPCTimeoutMillis)*time.Millisecond)
	defer cancel()
	opts := &bind.CallOpts{Context: ctx, Pending: false}

	var out []interface{}
	err := x.contract.Call(opts, &out, "owner")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// buildCall packs an unsigned contract invocation; the caller signs and
// broadcasts it elsewhere.
func (x *Editions) buildCall(method string, args ...interface{}) (*types.Transaction, error) {
	data, err := x.abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}
	to := x.address
	return types.NewTx(&types.LegacyTx{
		To:   &to,
		Data: data,
	}), nil
}

func (x *Editions) BuildCreateEdition(id *big.Int, info EditionInfo, to common.Address, amount *big.Int, feeReceiver common.Address, feeNumerator *big.Int) (*types.Transaction, error) {
	return x.buildCall("createEdition", id, info, to, amount, feeReceiver, feeNumerator)
}

func (x *Editions) BuildEditEdition(id *big.Int, info EditionInfo) (*types.Transaction, error) {
	return x.buildCall("editEdition", id, info)
}

func (x *Editions) BuildSafeTransferFrom(from common.Address, to common.Address, id *big.Int, amount *big.Int) (*types.Transaction, error) {
	return x.buildCall("safeTransferFrom", from, to, id, amount, []byte{})
}

func (x *Editions) BuildPermit(owner common.Address, spender common.Address, id *big.Int, value *big.Int, deadline *big.Int, v uint8, r [32]byte, s [32]byte) (*types.Transaction, error) {
	return x.buildCall("permit", owner, spender, id, value, deadline, v, r, s)
}

// PermitTokenTransferHash computes the digest the asset owner must sign for
// the two-phase transfer handshake, using the unlimited deadline sentinel.
func (x *Editions) PermitTokenTransferHash(owner common.Address, spender common.Address, id *big.Int, value *big.Int) ([]byte, error) {
	domain := util.DomainData{
		Name:              "EditionContract",
		Version:           "1",
		ChainId:           x.chainID,
		VerifyingContract: x.address,
	}
	return util.PermitTypedDataHash(domain, owner, spender, id, value, util.UnlimitedDeadline)
}
