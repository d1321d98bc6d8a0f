package events

import (
	"time"
)

// NftEventKey is the routing key on the drop lifecycle stream.
type NftEventKey struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
}

// TreasuryEventKey is the routing key on the custody stream.
type TreasuryEventKey struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
}

// PolygonNftEventKey is the routing key on the outbound stream. Outbound
// keys are always derived from the inbound key so downstream consumers of a
// subject observe the transport's key-partitioned order.
type PolygonNftEventKey struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
}

func (k NftEventKey) PolygonKey() PolygonNftEventKey {
	return PolygonNftEventKey{
		ID:        k.ID,
		UserID:    k.UserID,
		ProjectID: k.ProjectID,
	}
}

func (k TreasuryEventKey) PolygonKey() PolygonNftEventKey {
	return PolygonNftEventKey{
		ID:        k.ID,
		UserID:    k.UserID,
		ProjectID: k.ProjectID,
	}
}

// EditionInfo is the on-chain metadata for one edition. Collection is the
// display name of the drop.
type EditionInfo struct {
	Description string `json:"description"`
	ImageUri    string `json:"imageUri"`
	Collection  string `json:"collection"`
	Uri         string `json:"uri"`
	Creator     string `json:"creator"`
}

// PolygonEvents is the inbound drop lifecycle stream. Exactly one variant is
// set per message.
type PolygonEvents struct {
	CreateEditionDrop      *CreateEditionDrop      `json:"createEditionDrop,omitempty"`
	RetryCreateEditionDrop *RetryCreateEditionDrop `json:"retryCreateEditionDrop,omitempty"`
	MintEditionDrop        *MintEditionDrop        `json:"mintEditionDrop,omitempty"`
	UpdateEditionDrop      *UpdateEditionDrop      `json:"updateEditionDrop,omitempty"`
	RetryMintEditionDrop   *RetryMintEditionDrop   `json:"retryMintEditionDrop,omitempty"`
	TransferPolygonAsset   *TransferPolygonAsset   `json:"transferPolygonAsset,omitempty"`
}

type CreateEditionDrop struct {
	EditionInfo  *EditionInfo `json:"editionInfo,omitempty"`
	FeeReceiver  string       `json:"feeReceiver"`
	FeeNumerator int64        `json:"feeNumerator"`
	Receiver     string       `json:"receiver"`
	Amount       int64        `json:"amount"`
}

// RetryCreateEditionDrop intentionally carries no edition metadata; a retry
// always rebuilds from the stored collection.
type RetryCreateEditionDrop struct {
	FeeReceiver  string `json:"feeReceiver"`
	FeeNumerator int64  `json:"feeNumerator"`
	Receiver     string `json:"receiver"`
	Amount       int64  `json:"amount"`
}

type MintEditionDrop struct {
	CollectionId string `json:"collectionId"`
	Receiver     string `json:"receiver"`
	Amount       int64  `json:"amount"`
}

type UpdateEditionDrop struct {
	CollectionId string       `json:"collectionId"`
	EditionInfo  *EditionInfo `json:"editionInfo,omitempty"`
}

type RetryMintEditionDrop struct {
	CollectionId string `json:"collectionId"`
	Receiver     string `json:"receiver"`
	Amount       int64  `json:"amount"`
}

type TransferPolygonAsset struct {
	MintId           string `json:"mintId"`
	OwnerAddress     string `json:"ownerAddress"`
	RecipientAddress string `json:"recipientAddress"`
	Amount           int64  `json:"amount"`
}

// TreasuryEvents is the inbound custody stream.
type TreasuryEvents struct {
	PermitTransferAssetHashSigned *PermitTransferAssetHashSigned `json:"permitTransferAssetHashSigned,omitempty"`
}

type Signature struct {
	R string `json:"r"`
	S string `json:"s"`
	V uint32 `json:"v"`
}

type PermitTransferAssetHashSigned struct {
	Signature *Signature `json:"signature,omitempty"`
	Owner     string     `json:"owner"`
	Spender   string     `json:"spender"`
	Recipient string     `json:"recipient"`
	EditionId int64      `json:"editionId"`
	Amount    int64      `json:"amount"`
}

// PolygonNftEvents is the outbound stream. Exactly one variant is set per
// message.
type PolygonNftEvents struct {
	SubmitCreateDropTxn         *Transaction                 `json:"submitCreateDropTxn,omitempty"`
	SubmitRetryCreateDropTxn    *Transaction                 `json:"submitRetryCreateDropTxn,omitempty"`
	SubmitMintDropTxn           *Transaction                 `json:"submitMintDropTxn,omitempty"`
	SubmitRetryMintDropTxn      *Transaction                 `json:"submitRetryMintDropTxn,omitempty"`
	SubmitUpdateDropTxn         *Transaction                 `json:"submitUpdateDropTxn,omitempty"`
	SignPermitTokenTransferHash *PermitTokenTransferHash     `json:"signPermitTokenTransferHash,omitempty"`
	SubmitTransferAssetTxns     *TransferAssetTxns           `json:"submitTransferAssetTxns,omitempty"`
	UpdateMintsOwner            *MintedTokensOwnershipUpdate `json:"updateMintsOwner,omitempty"`
}

// Transaction is one unsigned contract call ready for external signing and
// broadcast.
type Transaction struct {
	Data            string `json:"data"`
	ContractAddress string `json:"contractAddress"`
	EditionId       int64  `json:"editionId"`
}

type PermitTokenTransferHash struct {
	Hash      string `json:"hash"`
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Recipient string `json:"recipient"`
	EditionId int64  `json:"editionId"`
	Amount    int64  `json:"amount"`
}

// TransferAssetTxns bundles the permit and transfer calls of one asset
// transfer; the permit must be broadcast before the transfer.
type TransferAssetTxns struct {
	PermitTxnData   string `json:"permitTxnData"`
	TransferTxnData string `json:"transferTxnData"`
	ContractAddress string `json:"contractAddress"`
	EditionId       int64  `json:"editionId"`
}

type MintedTokensOwnershipUpdate struct {
	MintIds         []string  `json:"mintIds"`
	NewOwner        string    `json:"newOwner"`
	Timestamp       time.Time `json:"timestamp"`
	TransactionHash string    `json:"transactionHash"`
}
