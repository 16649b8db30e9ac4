package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/exchange"
)

type askBookSuite struct {
	suite.Suite
	book exchange.Book
}

func TestAskBook(t *testing.T) {
	suite.Run(t, new(askBookSuite))
}

func (s *askBookSuite) SetupTest() {
	s.book = NewAskBook()
}

func makeAsk(tokenId uint64, seller domain.Address, seq uint64) *exchange.Ask {
	return &exchange.Ask{
		TokenId:   domain.TokenId(tokenId),
		Seller:    seller.ToLower(),
		Price:     fmt.Sprintf("%d000000000000000000", seq+1),
		Sequence:  seq,
		CreatedAt: time.Now(),
	}
}

func (s *askBookSuite) tokenIds(asks []*exchange.Ask) []uint64 {
	ids := make([]uint64, len(asks))
	for i, a := range asks {
		ids[i] = uint64(a.TokenId)
	}
	return ids
}

func (s *askBookSuite) TestAddAndGet() {
	alice := domain.Address("0xaa00000000000000000000000000000000000001")

	ask := makeAsk(7, alice, 1)
	s.NoError(s.book.Add(ask))

	got, err := s.book.Get(7)
	s.NoError(err)
	s.Equal(ask, got)

	_, err = s.book.Get(8)
	s.Equal(domain.ErrNotFound, err)

	s.Equal(1, s.book.Len())
}

func (s *askBookSuite) TestAddDuplicate() {
	alice := domain.Address("0xaa00000000000000000000000000000000000001")
	bob := domain.Address("0xbb00000000000000000000000000000000000002")

	s.NoError(s.book.Add(makeAsk(7, alice, 1)))
	s.Equal(domain.ErrConflict, s.book.Add(makeAsk(7, bob, 2)))
	s.Equal(1, s.book.Len())
}

func (s *askBookSuite) TestRemove() {
	alice := domain.Address("0xaa00000000000000000000000000000000000001")

	s.NoError(s.book.Add(makeAsk(1, alice, 1)))
	s.NoError(s.book.Add(makeAsk(2, alice, 2)))
	s.NoError(s.book.Add(makeAsk(3, alice, 3)))

	removed, err := s.book.Remove(2)
	s.NoError(err)
	s.Equal(domain.TokenId(2), removed.TokenId)
	s.Equal(2, s.book.Len())

	_, err = s.book.Remove(2)
	s.Equal(domain.ErrNotFound, err)

	// later entries shift forward
	s.Equal([]uint64{1, 3}, s.tokenIds(s.book.All()))
	s.Equal([]uint64{3, 1}, s.tokenIds(s.book.AllDesc()))
}

func (s *askBookSuite) TestRangeOrdering() {
	alice := domain.Address("0xaa00000000000000000000000000000000000001")

	for i := uint64(1); i <= 5; i++ {
		s.NoError(s.book.Add(makeAsk(i*10, alice, i)))
	}

	s.Equal([]uint64{10, 20}, s.tokenIds(s.book.Range(0, 2)))
	s.Equal([]uint64{30, 40}, s.tokenIds(s.book.Range(2, 2)))
	s.Equal([]uint64{50}, s.tokenIds(s.book.Range(4, 2)))
	s.Empty(s.book.Range(5, 2))

	s.Equal([]uint64{50, 40}, s.tokenIds(s.book.RangeDesc(0, 2)))
	s.Equal([]uint64{30, 20}, s.tokenIds(s.book.RangeDesc(2, 2)))
	s.Equal([]uint64{10}, s.tokenIds(s.book.RangeDesc(4, 2)))
	s.Empty(s.book.RangeDesc(5, 2))
}

func (s *askBookSuite) TestRangeBadBounds() {
	alice := domain.Address("0xaa00000000000000000000000000000000000001")
	s.NoError(s.book.Add(makeAsk(1, alice, 1)))

	s.Empty(s.book.Range(-1, -1))
	s.Equal([]uint64{1}, s.tokenIds(s.book.Range(0, 100)))
}

func (s *askBookSuite) TestByUser() {
	alice := domain.Address("0xAA00000000000000000000000000000000000001")
	bob := domain.Address("0xbb00000000000000000000000000000000000002")

	s.NoError(s.book.Add(makeAsk(1, alice, 1)))
	s.NoError(s.book.Add(makeAsk(2, bob, 2)))
	s.NoError(s.book.Add(makeAsk(3, alice, 3)))

	// lookup is case insensitive over addresses
	s.Equal([]uint64{1, 3}, s.tokenIds(s.book.ByUser(alice.ToLower())))
	s.Equal([]uint64{3, 1}, s.tokenIds(s.book.ByUserDesc(alice)))
	s.Equal([]uint64{2}, s.tokenIds(s.book.ByUser(bob)))
	s.Empty(s.book.ByUser(domain.Address("0xcc00000000000000000000000000000000000003")))

	_, err := s.book.Remove(1)
	s.NoError(err)
	s.Equal([]uint64{3}, s.tokenIds(s.book.ByUser(alice)))

	_, err = s.book.Remove(3)
	s.NoError(err)
	s.Empty(s.book.ByUser(alice))
}

func (s *askBookSuite) TestLoad() {
	alice := domain.Address("0xaa00000000000000000000000000000000000001")

	s.NoError(s.book.Add(makeAsk(99, alice, 9)))

	asks := []*exchange.Ask{
		makeAsk(1, alice, 1),
		makeAsk(2, alice, 2),
	}
	s.book.Load(asks, 5000)

	s.Equal(2, s.book.Len())
	s.Equal([]uint64{1, 2}, s.tokenIds(s.book.All()))
	s.Equal(domain.TokenId(5000), s.book.MaxTradableTokenId())

	_, err := s.book.Get(99)
	s.Equal(domain.ErrNotFound, err)
}

func (s *askBookSuite) TestMaxTradableTokenId() {
	s.Equal(domain.TokenId(0), s.book.MaxTradableTokenId())
	s.book.SetMaxTradableTokenId(100)
	s.Equal(domain.TokenId(100), s.book.MaxTradableTokenId())

	// lowering never evicts existing entries
	alice := domain.Address("0xaa00000000000000000000000000000000000001")
	s.NoError(s.book.Add(makeAsk(80, alice, 1)))
	s.book.SetMaxTradableTokenId(50)
	got, err := s.book.Get(80)
	s.NoError(err)
	s.Equal(domain.TokenId(80), got.TokenId)
}

func (s *askBookSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			seller := domain.Address(fmt.Sprintf("0xaa0000000000000000000000000000000000000%d", w))
			for i := 0; i < 50; i++ {
				tokenId := uint64(w*1000 + i)
				s.NoError(s.book.Add(makeAsk(tokenId, seller, tokenId)))
				s.book.Range(0, 10)
				s.book.ByUser(seller)
			}
		}(w)
	}
	wg.Wait()
	s.Equal(200, s.book.Len())
}
