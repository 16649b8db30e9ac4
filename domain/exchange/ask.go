package exchange

import (
	"time"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
)

// Ask is an open offer to sell one nft at a fixed price. At most one live
// ask exists per token id. An ask is never mutated in place, it only gets
// created and removed.
type Ask struct {
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Price     string         `json:"price" bson:"price"`
	Sequence  uint64         `json:"sequence" bson:"sequence"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Book is the in-memory dual index over live asks: one global sequence
// ordered index plus one per seller. All methods are safe for concurrent
// use; each mutating method is atomic over both indexes.
//
// Enumeration is ordered by creation sequence. Offset based pagination is
// stable against concurrent inserts, which only append, but a concurrent
// removal shifts later positions by one. Callers paging across multiple
// calls may skip or repeat an entry when cancellations land between pages.
type Book interface {
	// Load resets the book from a persisted snapshot, asks must be sorted
	// by sequence ascending.
	Load(asks []*Ask, ceiling domain.TokenId)
	Add(ask *Ask) error
	Remove(tokenId domain.TokenId) (*Ask, error)
	Get(tokenId domain.TokenId) (*Ask, error)
	Len() int
	Range(offset, limit int) []*Ask
	RangeDesc(offset, limit int) []*Ask
	All() []*Ask
	AllDesc() []*Ask
	ByUser(seller domain.Address) []*Ask
	ByUserDesc(seller domain.Address) []*Ask
	MaxTradableTokenId() domain.TokenId
	SetMaxTradableTokenId(tokenId domain.TokenId)
}

// Repo is the durable side of the ledger. The book is rebuilt from it at
// boot, the sequence counter survives restarts so sequences are never
// reused.
type Repo interface {
	// FindAll returns every persisted ask sorted by sequence ascending
	FindAll(ctx ctx.Ctx) ([]*Ask, error)
	Upsert(ctx ctx.Ctx, ask *Ask) error
	Remove(ctx ctx.Ctx, tokenId domain.TokenId) error
	NextSequence(ctx ctx.Ctx) (uint64, error)
	GetMaxTradableTokenId(ctx ctx.Ctx) (domain.TokenId, error)
	SetMaxTradableTokenId(ctx ctx.Ctx, tokenId domain.TokenId) error
}

// CancelResult reports a per item outcome of a batch cancellation. One bad
// entry never aborts the remaining ones.
type CancelResult struct {
	TokenId  domain.TokenId `json:"tokenId"`
	Canceled bool           `json:"canceled"`
	Reason   string         `json:"reason,omitempty"`
}

type UseCase interface {
	ReadyToSellToken(ctx ctx.Ctx, seller domain.Address, tokenId domain.TokenId, price string) (*Ask, error)
	CancelSellToken(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error
	CancelSellTokens(ctx ctx.Ctx, caller domain.Address, tokenIds []domain.TokenId) []CancelResult
	BuyToken(ctx ctx.Ctx, buyer domain.Address, tokenId domain.TokenId) (*Ask, error)

	GetAsks(ctx ctx.Ctx) ([]*Ask, error)
	GetAsksDesc(ctx ctx.Ctx) ([]*Ask, error)
	GetAsksByPage(ctx ctx.Ctx, offset, limit int) ([]*Ask, error)
	GetAsksByPageDesc(ctx ctx.Ctx, offset, limit int) ([]*Ask, error)
	GetAskLength(ctx ctx.Ctx) (int, error)
	GetAsksByUser(ctx ctx.Ctx, seller domain.Address) ([]*Ask, error)
	GetAsksByUserDesc(ctx ctx.Ctx, seller domain.Address) ([]*Ask, error)
	MaxTradableTokenId(ctx ctx.Ctx) (domain.TokenId, error)

	UpdateMaxTradableTokenId(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error
	GetActivities(ctx ctx.Ctx, account domain.Address, offset, limit int32, opts ...ActivityFindAllOptionsFunc) ([]*Activity, error)
}
