package custody

import (
	"time"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
)

// TokenOwnership is the registry view of one nft: current owner plus
// whether the owner granted the exchange a transfer approval.
type TokenOwnership struct {
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Approved  bool           `json:"approved" bson:"approved"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// PaymentAccount tracks the payment token balance of one account. Balance
// is a decimal string in the smallest denomination.
type PaymentAccount struct {
	Address   domain.Address `json:"address" bson:"address"`
	Balance   string         `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	GetOwnership(ctx ctx.Ctx, tokenId domain.TokenId) (*TokenOwnership, error)
	UpsertOwnership(ctx ctx.Ctx, ownership *TokenOwnership) error
	GetAccount(ctx ctx.Ctx, address domain.Address) (*PaymentAccount, error)
	UpsertAccount(ctx ctx.Ctx, account *PaymentAccount) error

	// TransferToken moves ownership and clears the approval, both or neither
	TransferToken(ctx ctx.Ctx, tokenId domain.TokenId, from, to domain.Address) error
	// TransferPayment debits from and credits to, both or neither
	TransferPayment(ctx ctx.Ctx, from, to domain.Address, amount string) error
}

// PaymentBalance pairs the custodial balance of one account with the wallet
// balance read from the payment token contract. Wallet stays empty when the
// chain read is not configured or fails.
type PaymentBalance struct {
	Address   domain.Address `json:"address"`
	Custodial string         `json:"custodial"`
	Wallet    string         `json:"wallet,omitempty"`
}

// Custody is the capability the listing ledger consults for asset state and
// asset movement. Every failed check or transfer surfaces as
// domain.ErrCustodyRejected and the caller must abort without mutating its
// own state.
type Custody interface {
	VerifyOwner(ctx ctx.Ctx, tokenId domain.TokenId, account domain.Address) (bool, error)
	VerifyApproval(ctx ctx.Ctx, tokenId domain.TokenId) (bool, error)
	TransferToken(ctx ctx.Ctx, tokenId domain.TokenId, from, to domain.Address) error
	TransferPayment(ctx ctx.Ctx, from, to domain.Address, amount string) error
	GetPaymentBalance(ctx ctx.Ctx, account domain.Address) (*PaymentBalance, error)
}
