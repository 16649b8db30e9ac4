package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/base/goroutine"
	"github.com/dishswap/exchange-api/base/log"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/admin"
	"github.com/dishswap/exchange-api/domain/custody"
	"github.com/dishswap/exchange-api/domain/exchange"
)

// askEnumerateCap bounds the unpaginated enumeration endpoints
const askEnumerateCap = 1000

type Config struct {
	Book     exchange.Book
	Repo     exchange.Repo
	Activity exchange.ActivityRepo
	Custody  custody.Custody
	Admin    admin.Usecase

	// DefaultMaxTradableTokenId seeds the ceiling when none was persisted yet
	DefaultMaxTradableTokenId domain.TokenId
}

type impl struct {
	// mu serializes every ledger mutation, reads go straight to the book
	mu       sync.Mutex
	book     exchange.Book
	repo     exchange.Repo
	activity exchange.ActivityRepo
	custody  custody.Custody
	admin    admin.Usecase
}

// New rebuilds the book from persistence and returns the ledger usecase
func New(c ctx.Ctx, cfg *Config) (exchange.UseCase, error) {
	im := &impl{
		book:     cfg.Book,
		repo:     cfg.Repo,
		activity: cfg.Activity,
		custody:  cfg.Custody,
		admin:    cfg.Admin,
	}

	asks, err := im.repo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, xerrors.Errorf("failed to load asks: %w", err)
	}

	ceiling, err := im.repo.GetMaxTradableTokenId(c)
	if err == domain.ErrNotFound {
		ceiling = cfg.DefaultMaxTradableTokenId
		if err := im.repo.SetMaxTradableTokenId(c, ceiling); err != nil {
			c.WithField("err", err).Error("repo.SetMaxTradableTokenId failed")
			return nil, err
		}
	} else if err != nil {
		c.WithField("err", err).Error("repo.GetMaxTradableTokenId failed")
		return nil, err
	}

	im.book.Load(asks, ceiling)

	c.WithFields(log.Fields{
		"asks":    len(asks),
		"ceiling": ceiling,
	}).Info("ask book loaded")

	return im, nil
}

func validatePrice(price string) error {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if d.Sign() <= 0 {
		return domain.ErrZeroPrice
	}
	return nil
}

func (im *impl) ReadyToSellToken(c ctx.Ctx, seller domain.Address, tokenId domain.TokenId, price string) (*exchange.Ask, error) {
	seller = seller.ToLower()

	if err := validatePrice(price); err != nil {
		return nil, err
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	if tokenId > im.book.MaxTradableTokenId() {
		return nil, domain.ErrExceedsMaxTradable
	}

	if _, err := im.book.Get(tokenId); err == nil {
		return nil, domain.ErrConflict
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	if ok, err := im.custody.VerifyOwner(c, tokenId, seller); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrCustodyRejected
	}

	if ok, err := im.custody.VerifyApproval(c, tokenId); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrCustodyRejected
	}

	seq, err := im.repo.NextSequence(c)
	if err != nil {
		c.WithField("err", err).Error("repo.NextSequence failed")
		return nil, err
	}

	ask := &exchange.Ask{
		TokenId:   tokenId,
		Seller:    seller,
		Price:     price,
		Sequence:  seq,
		CreatedAt: time.Now(),
	}

	if err := im.repo.Upsert(c, ask); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}

	if err := im.book.Add(ask); err != nil {
		// roll the persisted ask back, the book stays authoritative
		if rerr := im.repo.Remove(c, tokenId); rerr != nil {
			c.WithFields(log.Fields{"err": rerr, "tokenId": tokenId}).Error("repo.Remove rollback failed")
		}
		return nil, err
	}

	im.recordActivity(c, &exchange.Activity{
		Type:    exchange.ActivityTypeList,
		TokenId: tokenId,
		Price:   price,
		Seller:  seller,
	})

	return ask, nil
}

func (im *impl) CancelSellToken(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error {
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	return im.cancel(c, caller, tokenId)
}

// cancel assumes the mutation lock is held
func (im *impl) cancel(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error {
	ask, err := im.book.Get(tokenId)
	if err != nil {
		return err
	}

	if !ask.Seller.Equals(caller) {
		return domain.ErrNotSeller
	}

	if err := im.repo.Remove(c, tokenId); err != nil {
		c.WithField("err", err).Error("repo.Remove failed")
		return err
	}

	if _, err := im.book.Remove(tokenId); err != nil {
		return err
	}

	im.recordActivity(c, &exchange.Activity{
		Type:    exchange.ActivityTypeCancel,
		TokenId: tokenId,
		Price:   ask.Price,
		Seller:  ask.Seller,
	})

	return nil
}

func (im *impl) CancelSellTokens(c ctx.Ctx, caller domain.Address, tokenIds []domain.TokenId) []exchange.CancelResult {
	caller = caller.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	res := make([]exchange.CancelResult, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		r := exchange.CancelResult{TokenId: tokenId}
		if err := im.cancel(c, caller, tokenId); err != nil {
			r.Reason = err.Error()
		} else {
			r.Canceled = true
		}
		res = append(res, r)
	}
	return res
}

func (im *impl) BuyToken(c ctx.Ctx, buyer domain.Address, tokenId domain.TokenId) (*exchange.Ask, error) {
	buyer = buyer.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	ask, err := im.book.Get(tokenId)
	if err != nil {
		return nil, err
	}

	if ask.Seller.Equals(buyer) {
		return nil, domain.ErrBadParamInput
	}

	if err := im.custody.TransferPayment(c, buyer, ask.Seller, ask.Price); err != nil {
		return nil, err
	}

	if err := im.custody.TransferToken(c, tokenId, ask.Seller, buyer); err != nil {
		// refund, the settlement must be all or nothing
		if rerr := im.custody.TransferPayment(c, ask.Seller, buyer, ask.Price); rerr != nil {
			c.WithFields(log.Fields{
				"err":     rerr,
				"tokenId": tokenId,
				"buyer":   buyer,
			}).Error("refund failed")
		}
		return nil, err
	}

	if err := im.repo.Remove(c, tokenId); err != nil {
		c.WithField("err", err).Error("repo.Remove failed")
		// the listing stays live, unwind the settlement
		if rerr := im.custody.TransferToken(c, tokenId, buyer, ask.Seller); rerr != nil {
			c.WithFields(log.Fields{
				"err":     rerr,
				"tokenId": tokenId,
				"buyer":   buyer,
			}).Error("token return failed")
		}
		if rerr := im.custody.TransferPayment(c, ask.Seller, buyer, ask.Price); rerr != nil {
			c.WithFields(log.Fields{
				"err":     rerr,
				"tokenId": tokenId,
				"buyer":   buyer,
			}).Error("refund failed")
		}
		return nil, err
	}

	if _, err := im.book.Remove(tokenId); err != nil {
		return nil, err
	}

	im.recordActivity(c, &exchange.Activity{
		Type:    exchange.ActivityTypeBuy,
		TokenId: tokenId,
		Price:   ask.Price,
		Seller:  ask.Seller,
		Buyer:   buyer,
	})

	return ask, nil
}

func (im *impl) GetAsks(c ctx.Ctx) ([]*exchange.Ask, error) {
	return im.book.Range(0, askEnumerateCap), nil
}

func (im *impl) GetAsksDesc(c ctx.Ctx) ([]*exchange.Ask, error) {
	return im.book.RangeDesc(0, askEnumerateCap), nil
}

func (im *impl) GetAsksByPage(c ctx.Ctx, offset, limit int) ([]*exchange.Ask, error) {
	if offset < 0 || limit <= 0 {
		return nil, domain.ErrBadParamInput
	}
	return im.book.Range(offset, limit), nil
}

func (im *impl) GetAsksByPageDesc(c ctx.Ctx, offset, limit int) ([]*exchange.Ask, error) {
	if offset < 0 || limit <= 0 {
		return nil, domain.ErrBadParamInput
	}
	return im.book.RangeDesc(offset, limit), nil
}

func (im *impl) GetAskLength(c ctx.Ctx) (int, error) {
	return im.book.Len(), nil
}

func (im *impl) GetAsksByUser(c ctx.Ctx, seller domain.Address) ([]*exchange.Ask, error) {
	return im.book.ByUser(seller), nil
}

func (im *impl) GetAsksByUserDesc(c ctx.Ctx, seller domain.Address) ([]*exchange.Ask, error) {
	return im.book.ByUserDesc(seller), nil
}

func (im *impl) MaxTradableTokenId(c ctx.Ctx) (domain.TokenId, error) {
	return im.book.MaxTradableTokenId(), nil
}

func (im *impl) UpdateMaxTradableTokenId(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) error {
	caller = caller.ToLower()

	if ok, err := im.admin.IsAuthorizedAdmin(c, caller); err != nil {
		c.WithField("err", err).Error("admin.IsAuthorizedAdmin failed")
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.repo.SetMaxTradableTokenId(c, tokenId); err != nil {
		c.WithField("err", err).Error("repo.SetMaxTradableTokenId failed")
		return err
	}

	// lowering is not retroactive, live asks above the new ceiling stay
	im.book.SetMaxTradableTokenId(tokenId)

	im.recordActivity(c, &exchange.Activity{
		Type:    exchange.ActivityTypeUpdateCeiling,
		TokenId: tokenId,
		Seller:  caller,
	})

	return nil
}

func (im *impl) GetActivities(c ctx.Ctx, account domain.Address, offset, limit int32, opts ...exchange.ActivityFindAllOptionsFunc) ([]*exchange.Activity, error) {
	if offset < 0 || limit <= 0 {
		return nil, domain.ErrBadParamInput
	}
	opts = append(opts,
		exchange.ActivityWithAccount(account),
		exchange.ActivityWithPagination(offset, limit),
	)
	res, err := im.activity.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("activity.FindAll failed")
		return nil, err
	}
	return res, nil
}

// recordActivity appends the audit record off the request path, a failed
// insert never fails the committed mutation
func (im *impl) recordActivity(c ctx.Ctx, act *exchange.Activity) {
	act.Id = uuid.New().String()
	act.CreatedAt = time.Now()

	bg := ctx.Background()
	goroutine.RecoverableGo(func() {
		if err := im.activity.Insert(bg, act); err != nil {
			bg.WithFields(log.Fields{
				"err":  err,
				"type": act.Type,
				"id":   act.Id,
			}).Error("activity.Insert failed")
		}
	})
}
