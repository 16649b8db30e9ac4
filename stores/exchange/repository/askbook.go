package repository

import (
	"sync"

	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/exchange"
)

type askBook struct {
	mu        sync.RWMutex
	records   map[domain.TokenId]*exchange.Ask
	order     []*exchange.Ask
	pos       map[domain.TokenId]int
	bySeller  map[domain.Address][]*exchange.Ask
	sellerPos map[domain.Address]map[domain.TokenId]int
	ceiling   domain.TokenId
}

// NewAskBook creates an empty book
func NewAskBook() exchange.Book {
	b := &askBook{}
	b.reset(nil, 0)
	return b
}

func (b *askBook) reset(asks []*exchange.Ask, ceiling domain.TokenId) {
	b.records = map[domain.TokenId]*exchange.Ask{}
	b.order = nil
	b.pos = map[domain.TokenId]int{}
	b.bySeller = map[domain.Address][]*exchange.Ask{}
	b.sellerPos = map[domain.Address]map[domain.TokenId]int{}
	b.ceiling = ceiling
	for _, ask := range asks {
		b.add(ask)
	}
}

func (b *askBook) Load(asks []*exchange.Ask, ceiling domain.TokenId) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset(asks, ceiling)
}

func (b *askBook) Add(ask *exchange.Ask) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[ask.TokenId]; ok {
		return domain.ErrConflict
	}
	b.add(ask)
	return nil
}

// add assumes the write lock is held and the token id is absent
func (b *askBook) add(ask *exchange.Ask) {
	seller := ask.Seller.ToLower()

	b.records[ask.TokenId] = ask
	b.pos[ask.TokenId] = len(b.order)
	b.order = append(b.order, ask)

	if b.sellerPos[seller] == nil {
		b.sellerPos[seller] = map[domain.TokenId]int{}
	}
	b.sellerPos[seller][ask.TokenId] = len(b.bySeller[seller])
	b.bySeller[seller] = append(b.bySeller[seller], ask)
}

func (b *askBook) Remove(tokenId domain.TokenId) (*exchange.Ask, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ask, ok := b.records[tokenId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(b.records, tokenId)

	i := b.pos[tokenId]
	delete(b.pos, tokenId)
	b.order = append(b.order[:i], b.order[i+1:]...)
	// entries after the removed one shift left by one
	for j := i; j < len(b.order); j++ {
		b.pos[b.order[j].TokenId] = j
	}

	seller := ask.Seller.ToLower()
	si := b.sellerPos[seller][tokenId]
	delete(b.sellerPos[seller], tokenId)
	asks := append(b.bySeller[seller][:si], b.bySeller[seller][si+1:]...)
	for j := si; j < len(asks); j++ {
		b.sellerPos[seller][asks[j].TokenId] = j
	}
	if len(asks) == 0 {
		delete(b.bySeller, seller)
		delete(b.sellerPos, seller)
	} else {
		b.bySeller[seller] = asks
	}

	return ask, nil
}

func (b *askBook) Get(tokenId domain.TokenId) (*exchange.Ask, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ask, ok := b.records[tokenId]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ask, nil
}

func (b *askBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

func (b *askBook) Range(offset, limit int) []*exchange.Ask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pageOf(b.order, offset, limit, false)
}

func (b *askBook) RangeDesc(offset, limit int) []*exchange.Ask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pageOf(b.order, offset, limit, true)
}

func (b *askBook) All() []*exchange.Ask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pageOf(b.order, 0, len(b.order), false)
}

func (b *askBook) AllDesc() []*exchange.Ask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pageOf(b.order, 0, len(b.order), true)
}

func (b *askBook) ByUser(seller domain.Address) []*exchange.Ask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	asks := b.bySeller[seller.ToLower()]
	return pageOf(asks, 0, len(asks), false)
}

func (b *askBook) ByUserDesc(seller domain.Address) []*exchange.Ask {
	b.mu.RLock()
	defer b.mu.RUnlock()
	asks := b.bySeller[seller.ToLower()]
	return pageOf(asks, 0, len(asks), true)
}

func (b *askBook) MaxTradableTokenId() domain.TokenId {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ceiling
}

func (b *askBook) SetMaxTradableTokenId(tokenId domain.TokenId) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ceiling = tokenId
}

// pageOf copies one page out of asks so callers never alias internal
// slices. For desc the offset counts from the newest entry.
func pageOf(asks []*exchange.Ask, offset, limit int, desc bool) []*exchange.Ask {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset >= len(asks) {
		return []*exchange.Ask{}
	}
	if limit > len(asks)-offset {
		limit = len(asks) - offset
	}

	res := make([]*exchange.Ask, limit)
	if desc {
		for i := 0; i < limit; i++ {
			res[i] = asks[len(asks)-1-offset-i]
		}
	} else {
		copy(res, asks[offset:offset+limit])
	}
	return res
}
