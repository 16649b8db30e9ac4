package exchange

import (
	"time"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
)

type ActivityType string

const (
	ActivityTypeList          ActivityType = "list"
	ActivityTypeCancel        ActivityType = "cancel"
	ActivityTypeBuy           ActivityType = "buy"
	ActivityTypeUpdateCeiling ActivityType = "updateCeiling"
)

// Activity is an append only record of a committed ledger mutation.
type Activity struct {
	Id        string         `json:"id" bson:"id"`
	Type      ActivityType   `json:"type" bson:"type"`
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	Price     string         `json:"price,omitempty" bson:"price,omitempty"`
	Seller    domain.Address `json:"seller,omitempty" bson:"seller,omitempty"`
	Buyer     domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type ActivityFindAllOptions struct {
	Account *domain.Address
	TokenId *domain.TokenId
	Type    *ActivityType
	Offset  *int32
	Limit   *int32
}

type ActivityFindAllOptionsFunc func(*ActivityFindAllOptions) error

func GetActivityFindAllOptions(opts ...ActivityFindAllOptionsFunc) (ActivityFindAllOptions, error) {
	res := ActivityFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// ActivityWithAccount matches records where the account is seller or buyer
func ActivityWithAccount(account domain.Address) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Account = &account
		return nil
	}
}

func ActivityWithTokenId(tokenId domain.TokenId) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func ActivityWithType(typ ActivityType) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Type = &typ
		return nil
	}
}

func ActivityWithPagination(offset, limit int32) ActivityFindAllOptionsFunc {
	return func(options *ActivityFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ActivityRepo interface {
	Insert(ctx ctx.Ctx, activity *Activity) error
	FindAll(ctx ctx.Ctx, opts ...ActivityFindAllOptionsFunc) ([]*Activity, error)
}
