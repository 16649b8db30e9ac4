package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/exchange"
	"github.com/dishswap/exchange-api/service/query"
)

type activityStore struct {
	q query.Mongo
}

// NewActivityStore creates the append only activity log on mongo
func NewActivityStore(q query.Mongo) exchange.ActivityRepo {
	return &activityStore{q}
}

func (im *activityStore) Insert(c ctx.Ctx, activity *exchange.Activity) error {
	if err := im.q.Insert(c, domain.TableActivities, activity); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *activityStore) FindAll(c ctx.Ctx, optFns ...exchange.ActivityFindAllOptionsFunc) ([]*exchange.Activity, error) {
	opts, err := exchange.GetActivityFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("exchange.GetActivityFindAllOptions failed")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	qry := bson.M{"id": bson.M{"$exists": true}}

	if opts.Account != nil {
		account := opts.Account.ToLower()
		qry["$or"] = bson.A{
			bson.M{"seller": account},
			bson.M{"buyer": account},
		}
	}

	if opts.TokenId != nil {
		qry["tokenId"] = *opts.TokenId
	}

	if opts.Type != nil {
		qry["type"] = *opts.Type
	}

	// newest first
	res := []*exchange.Activity{}
	if err := im.q.Search(c, domain.TableActivities, int(offset), int(limit), "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}
