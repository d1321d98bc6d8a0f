package processor

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holaplex/hub-nfts-polygon/eth/contract"
	"github.com/holaplex/hub-nfts-polygon/eth/util"
	"github.com/holaplex/hub-nfts-polygon/events"
	"github.com/holaplex/hub-nfts-polygon/models"
	"github.com/holaplex/hub-nfts-polygon/queue"
	"github.com/holaplex/hub-nfts-polygon/store"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoTxnData     = errors.New("no data in transaction")
	ErrNoEvent       = errors.New("no event found in message")
	ErrNoSignature   = errors.New("no signature found in event")
	ErrNoEditionInfo = errors.New("no edition info found in event")
)

// Processor turns inbound lifecycle events into unsigned contract calls and
// publishes them downstream. Every handler is one saga step: load or persist
// state, build the call, emit exactly one event.
type Processor struct {
	contract contract.EditionsContract
	producer queue.Producer
}

func NewProcessor(editions contract.EditionsContract, producer queue.Producer) *Processor {
	return &Processor{
		contract: editions,
		producer: producer,
	}
}

func (p *Processor) Process(group *events.MessageGroup) error {
	if group == nil {
		return ErrNoEvent
	}
	if group.Nfts != nil {
		return p.processNfts(group.Nfts)
	}
	if group.Treasuries != nil {
		return p.processTreasuries(group.Treasuries)
	}
	return ErrNoEvent
}

func (p *Processor) processNfts(msg *events.NftMessage) error {
	switch {
	case msg.Events.CreateEditionDrop != nil:
		return p.CreateDrop(msg.Key, msg.Events.CreateEditionDrop)
	case msg.Events.RetryCreateEditionDrop != nil:
		return p.RetryDrop(msg.Key, msg.Events.RetryCreateEditionDrop)
	case msg.Events.MintEditionDrop != nil:
		return p.MintDrop(msg.Key, msg.Events.MintEditionDrop)
	case msg.Events.UpdateEditionDrop != nil:
		return p.UpdateDrop(msg.Key, msg.Events.UpdateEditionDrop)
	case msg.Events.RetryMintEditionDrop != nil:
		return p.RetryMintDrop(msg.Key, msg.Events.RetryMintEditionDrop)
	case msg.Events.TransferPolygonAsset != nil:
		return p.TransferAsset(msg.Key, msg.Events.TransferPolygonAsset)
	default:
		return ErrNoEvent
	}
}

func (p *Processor) processTreasuries(msg *events.TreasuryMessage) error {
	if msg.Events.PermitTransferAssetHashSigned != nil {
		return p.PermitSigned(msg.Key, msg.Events.PermitTransferAssetHashSigned)
	}
	return ErrNoEvent
}

// CreateDrop persists a new collection, assigns its edition id and emits the
// unsigned createEdition call. The collection owner is the contract's current
// owner, read live so an ownership transfer is reflected immediately.
func (p *Processor) CreateDrop(key events.NftEventKey, event *events.CreateEditionDrop) error {
	log.Debug("[PROCESSOR] Creating drop: ", key.ID)

	if event.EditionInfo == nil {
		return ErrNoEditionInfo
	}
	info := event.EditionInfo

	owner, err := p.contract.Owner()
	if err != nil {
		return fmt.Errorf("error fetching contract owner: %w", err)
	}

	collection, err := store.CreateCollection(models.Collection{
		Id:          key.ID,
		FeeReceiver: event.FeeReceiver,
		Owner:       owner.Hex(),
		Creator:     info.Creator,
		Uri:         info.Uri,
		Name:        info.Collection,
		Description: info.Description,
		ImageUri:    info.ImageUri,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error creating collection: %w", err)
	}

	txn, err := p.buildCreateEdition(collection, event.Receiver, event.Amount, event.FeeReceiver, event.FeeNumerator)
	if err != nil {
		return err
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SubmitCreateDropTxn: txn,
	})
}

// RetryDrop rebuilds the createEdition call for an already persisted
// collection. The stored edition id is reused; no new id is allocated.
func (p *Processor) RetryDrop(key events.NftEventKey, event *events.RetryCreateEditionDrop) error {
	log.Debug("[PROCESSOR] Retrying drop: ", key.ID)

	collection, err := store.FindCollectionByID(key.ID)
	if err != nil {
		return fmt.Errorf("error finding collection: %w", err)
	}

	txn, err := p.buildCreateEdition(collection, event.Receiver, event.Amount, event.FeeReceiver, event.FeeNumerator)
	if err != nil {
		return err
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SubmitRetryCreateDropTxn: txn,
	})
}

func (p *Processor) buildCreateEdition(collection models.Collection, receiver string, amount int64, feeReceiver string, feeNumerator int64) (*events.Transaction, error) {
	txn, err := p.contract.BuildCreateEdition(
		big.NewInt(collection.EditionId),
		contract.EditionInfo{
			Creator:     common.HexToAddress(collection.Creator),
			Collection:  collection.Name,
			Uri:         collection.Uri,
			Description: collection.Description,
			ImageUri:    collection.ImageUri,
		},
		common.HexToAddress(receiver),
		big.NewInt(amount),
		common.HexToAddress(feeReceiver),
		big.NewInt(feeNumerator),
	)
	if err != nil {
		return nil, fmt.Errorf("error building createEdition call: %w", err)
	}
	if len(txn.Data()) == 0 {
		return nil, ErrNoTxnData
	}

	return &events.Transaction{
		Data:            hexutil.Encode(txn.Data()),
		ContractAddress: p.contract.Address().Hex(),
		EditionId:       collection.EditionId,
	}, nil
}

// MintDrop records the mint before the transaction is built so a later retry
// can find it even when the build or publish step failed.
func (p *Processor) MintDrop(key events.NftEventKey, event *events.MintEditionDrop) error {
	log.Debug("[PROCESSOR] Minting drop: ", key.ID)

	collection, err := store.FindCollectionByID(event.CollectionId)
	if err != nil {
		return fmt.Errorf("error finding collection: %w", err)
	}

	err = store.CreateMint(models.Mint{
		Id:           key.ID,
		CollectionId: collection.Id,
		Owner:        event.Receiver,
		Amount:       event.Amount,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error creating mint: %w", err)
	}

	txn, err := p.buildMintTransfer(collection, event.Receiver, event.Amount)
	if err != nil {
		return err
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SubmitMintDropTxn: txn,
	})
}

// RetryMintDrop rebuilds the transfer for a mint that already exists. The
// stored owner and amount are authoritative, so the rebuilt call is identical
// to the original.
func (p *Processor) RetryMintDrop(key events.NftEventKey, event *events.RetryMintEditionDrop) error {
	log.Debug("[PROCESSOR] Retrying mint: ", key.ID)

	mint, collection, err := store.FindMintWithCollection(key.ID)
	if err != nil {
		return fmt.Errorf("error finding mint: %w", err)
	}

	txn, err := p.buildMintTransfer(collection, mint.Owner, mint.Amount)
	if err != nil {
		return err
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SubmitRetryMintDropTxn: txn,
	})
}

func (p *Processor) buildMintTransfer(collection models.Collection, receiver string, amount int64) (*events.Transaction, error) {
	txn, err := p.contract.BuildSafeTransferFrom(
		common.HexToAddress(collection.Owner),
		common.HexToAddress(receiver),
		big.NewInt(collection.EditionId),
		big.NewInt(amount),
	)
	if err != nil {
		return nil, fmt.Errorf("error building safeTransferFrom call: %w", err)
	}
	if len(txn.Data()) == 0 {
		return nil, ErrNoTxnData
	}

	return &events.Transaction{
		Data:            hexutil.Encode(txn.Data()),
		ContractAddress: p.contract.Address().Hex(),
		EditionId:       collection.EditionId,
	}, nil
}

// UpdateDrop overwrites the collection's metadata with the fields present in
// the event and emits the unsigned editEdition call. Empty fields keep their
// stored value.
func (p *Processor) UpdateDrop(key events.NftEventKey, event *events.UpdateEditionDrop) error {
	log.Debug("[PROCESSOR] Updating drop: ", key.ID)

	if event.EditionInfo == nil {
		return ErrNoEditionInfo
	}
	info := event.EditionInfo

	collection, err := store.FindCollectionByID(event.CollectionId)
	if err != nil {
		return fmt.Errorf("error finding collection: %w", err)
	}

	if info.Creator != "" {
		collection.Creator = info.Creator
	}
	if info.Uri != "" {
		collection.Uri = info.Uri
	}
	if info.Collection != "" {
		collection.Name = info.Collection
	}
	if info.Description != "" {
		collection.Description = info.Description
	}
	if info.ImageUri != "" {
		collection.ImageUri = info.ImageUri
	}

	if err := store.UpdateCollectionMetadata(collection); err != nil {
		return fmt.Errorf("error updating collection: %w", err)
	}

	txn, err := p.contract.BuildEditEdition(
		big.NewInt(collection.EditionId),
		contract.EditionInfo{
			Creator:     common.HexToAddress(collection.Creator),
			Collection:  collection.Name,
			Uri:         collection.Uri,
			Description: collection.Description,
			ImageUri:    collection.ImageUri,
		},
	)
	if err != nil {
		return fmt.Errorf("error building editEdition call: %w", err)
	}
	if len(txn.Data()) == 0 {
		return ErrNoTxnData
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SubmitUpdateDropTxn: &events.Transaction{
			Data:            hexutil.Encode(txn.Data()),
			ContractAddress: p.contract.Address().Hex(),
			EditionId:       collection.EditionId,
		},
	})
}

// TransferAsset starts the two-phase transfer handshake: compute the permit
// digest for the asset and hand it to the custody side for signing. The
// spender is the contract's current owner, read live.
func (p *Processor) TransferAsset(key events.NftEventKey, event *events.TransferPolygonAsset) error {
	log.Debug("[PROCESSOR] Transferring asset for mint: ", event.MintId)

	_, collection, err := store.FindMintWithCollection(event.MintId)
	if err != nil {
		return fmt.Errorf("error finding mint: %w", err)
	}

	spender, err := p.contract.Owner()
	if err != nil {
		return fmt.Errorf("error fetching contract owner: %w", err)
	}

	hash, err := p.contract.PermitTokenTransferHash(
		common.HexToAddress(event.OwnerAddress),
		spender,
		big.NewInt(collection.EditionId),
		big.NewInt(event.Amount),
	)
	if err != nil {
		return fmt.Errorf("error computing permit hash: %w", err)
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SignPermitTokenTransferHash: &events.PermitTokenTransferHash{
			Hash:      hexutil.Encode(hash),
			Owner:     event.OwnerAddress,
			Spender:   spender.Hex(),
			Recipient: event.RecipientAddress,
			EditionId: collection.EditionId,
			Amount:    event.Amount,
		},
	})
}

// PermitSigned completes the handshake: assemble the permit call from the
// returned signature plus the matching safeTransferFrom, and publish both in
// one event so they are broadcast in order.
func (p *Processor) PermitSigned(key events.TreasuryEventKey, event *events.PermitTransferAssetHashSigned) error {
	log.Debug("[PROCESSOR] Permit signed for edition: ", event.EditionId)

	if event.Signature == nil {
		return ErrNoSignature
	}

	r := [32]byte(common.HexToHash(event.Signature.R))
	s := [32]byte(common.HexToHash(event.Signature.S))

	permitTxn, err := p.contract.BuildPermit(
		common.HexToAddress(event.Owner),
		common.HexToAddress(event.Spender),
		big.NewInt(event.EditionId),
		big.NewInt(event.Amount),
		util.UnlimitedDeadline,
		uint8(event.Signature.V),
		r,
		s,
	)
	if err != nil {
		return fmt.Errorf("error building permit call: %w", err)
	}
	if len(permitTxn.Data()) == 0 {
		return ErrNoTxnData
	}

	transferTxn, err := p.contract.BuildSafeTransferFrom(
		common.HexToAddress(event.Spender),
		common.HexToAddress(event.Recipient),
		big.NewInt(event.EditionId),
		big.NewInt(event.Amount),
	)
	if err != nil {
		return fmt.Errorf("error building safeTransferFrom call: %w", err)
	}
	if len(transferTxn.Data()) == 0 {
		return ErrNoTxnData
	}

	return p.producer.Send(key.PolygonKey(), events.PolygonNftEvents{
		SubmitTransferAssetTxns: &events.TransferAssetTxns{
			PermitTxnData:   hexutil.Encode(permitTxn.Data()),
			TransferTxnData: hexutil.Encode(transferTxn.Data()),
			ContractAddress: p.contract.Address().Hex(),
			EditionId:       event.EditionId,
		},
	})
}
