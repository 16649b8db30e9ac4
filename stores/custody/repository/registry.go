package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/custody"
	"github.com/dishswap/exchange-api/service/query"
)

type registry struct {
	q query.Mongo
}

// NewRegistry creates the custody registry on mongo
func NewRegistry(q query.Mongo) custody.Repo {
	return &registry{q}
}

func (im *registry) GetOwnership(c ctx.Ctx, tokenId domain.TokenId) (*custody.TokenOwnership, error) {
	res := &custody.TokenOwnership{}
	slr := bson.M{"tokenId": tokenId}
	if err := im.q.FindOne(c, domain.TableTokenOwners, slr, res); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *registry) UpsertOwnership(c ctx.Ctx, ownership *custody.TokenOwnership) error {
	ownership.Owner = ownership.Owner.ToLower()
	slr := bson.M{"tokenId": ownership.TokenId}
	if err := im.q.Upsert(c, domain.TableTokenOwners, slr, ownership); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *registry) GetAccount(c ctx.Ctx, address domain.Address) (*custody.PaymentAccount, error) {
	res := &custody.PaymentAccount{}
	slr := bson.M{"address": address.ToLower()}
	if err := im.q.FindOne(c, domain.TablePaymentBalances, slr, res); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *registry) UpsertAccount(c ctx.Ctx, account *custody.PaymentAccount) error {
	account.Address = account.Address.ToLower()
	slr := bson.M{"address": account.Address}
	if err := im.q.Upsert(c, domain.TablePaymentBalances, slr, account); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *registry) TransferToken(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Address) error {
	// the zero address cannot hold assets, a self transfer is a no-op at best
	if to.IsEmpty() || to.Equals(domain.EmptyAddress) || from.Equals(to) {
		return domain.ErrCustodyRejected
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		ownership, err := im.GetOwnership(c, tokenId)
		if err == domain.ErrNotFound {
			return domain.ErrCustodyRejected
		} else if err != nil {
			return err
		}

		if !ownership.Owner.Equals(from) {
			return domain.ErrCustodyRejected
		}

		ownership.Owner = to.ToLower()
		// a transfer consumes the approval
		ownership.Approved = false
		ownership.UpdatedAt = time.Now()

		return im.UpsertOwnership(c, ownership)
	})
}

func (im *registry) TransferPayment(c ctx.Ctx, from, to domain.Address, amount string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if amt.Sign() <= 0 {
		return domain.ErrCustodyRejected
	}

	// a self transfer would read the same account twice and net a credit
	if to.IsEmpty() || to.Equals(domain.EmptyAddress) || from.Equals(to) {
		return domain.ErrCustodyRejected
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		src, err := im.GetAccount(c, from)
		if err == domain.ErrNotFound {
			return domain.ErrCustodyRejected
		} else if err != nil {
			return err
		}

		srcBal, err := decimal.NewFromString(src.Balance)
		if err != nil {
			c.WithField("err", err).Error("corrupt balance")
			return err
		}
		if srcBal.LessThan(amt) {
			return domain.ErrCustodyRejected
		}

		dst, err := im.GetAccount(c, to)
		if err == domain.ErrNotFound {
			dst = &custody.PaymentAccount{Address: to.ToLower(), Balance: "0"}
		} else if err != nil {
			return err
		}

		dstBal, err := decimal.NewFromString(dst.Balance)
		if err != nil {
			c.WithField("err", err).Error("corrupt balance")
			return err
		}

		now := time.Now()
		src.Balance = srcBal.Sub(amt).String()
		src.UpdatedAt = now
		dst.Balance = dstBal.Add(amt).String()
		dst.UpdatedAt = now

		if err := im.UpsertAccount(c, src); err != nil {
			return err
		}
		return im.UpsertAccount(c, dst)
	})
}
