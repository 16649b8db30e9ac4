package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/exchange"
	"github.com/dishswap/exchange-api/service/query"
)

const (
	askSequenceCounter    = "askSequence"
	maxTradableTokenIdKey = "maxTradableTokenId"
)

type counter struct {
	Key      string `bson:"key"`
	Sequence uint64 `bson:"sequence"`
}

type setting struct {
	Key   string `bson:"key"`
	Value uint64 `bson:"value"`
}

type askStore struct {
	q query.Mongo
}

// NewAskStore creates the durable side of the ledger on mongo
func NewAskStore(q query.Mongo) exchange.Repo {
	return &askStore{q}
}

func (im *askStore) FindAll(c ctx.Ctx) ([]*exchange.Ask, error) {
	qry := bson.M{"sequence": bson.M{"$exists": true}}

	res := []*exchange.Ask{}
	if err := im.q.Search(c, domain.TableAsks, 0, 0, "sequence", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *askStore) Upsert(c ctx.Ctx, ask *exchange.Ask) error {
	slr := bson.M{"tokenId": ask.TokenId}
	if err := im.q.Upsert(c, domain.TableAsks, slr, ask); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *askStore) Remove(c ctx.Ctx, tokenId domain.TokenId) error {
	slr := bson.M{"tokenId": tokenId}
	if err := im.q.Remove(c, domain.TableAsks, slr); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}

func (im *askStore) NextSequence(c ctx.Ctx) (uint64, error) {
	res := &counter{}
	slr := bson.M{"key": askSequenceCounter}
	if err := im.q.Increment(c, domain.TableCounters, slr, res, "sequence", 1); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return res.Sequence, nil
}

func (im *askStore) GetMaxTradableTokenId(c ctx.Ctx) (domain.TokenId, error) {
	res := &setting{}
	slr := bson.M{"key": maxTradableTokenIdKey}
	if err := im.q.FindOne(c, domain.TableSettings, slr, res); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	} else if err == query.ErrNotFound {
		return 0, domain.ErrNotFound
	}
	return domain.TokenId(res.Value), nil
}

func (im *askStore) SetMaxTradableTokenId(c ctx.Ctx, tokenId domain.TokenId) error {
	slr := bson.M{"key": maxTradableTokenIdKey}
	val := &setting{Key: maxTradableTokenIdKey, Value: uint64(tokenId)}
	if err := im.q.Upsert(c, domain.TableSettings, slr, val); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
