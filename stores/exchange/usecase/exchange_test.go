package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	mAdmin "github.com/dishswap/exchange-api/domain/admin/mocks"
	mCustody "github.com/dishswap/exchange-api/domain/custody/mocks"
	"github.com/dishswap/exchange-api/domain/exchange"
	mExchange "github.com/dishswap/exchange-api/domain/exchange/mocks"
	"github.com/dishswap/exchange-api/stores/exchange/repository"
)

var (
	mockCtx = ctx.Background()
	alice   = domain.Address("0xaa00000000000000000000000000000000000001")
	bob     = domain.Address("0xbb00000000000000000000000000000000000002")
	carol   = domain.Address("0xcc00000000000000000000000000000000000003")
)

type exchangeSuite struct {
	suite.Suite
	repo     *mExchange.Repo
	activity *mExchange.ActivityRepo
	custody  *mCustody.Custody
	admin    *mAdmin.Usecase
	seq      uint64
	im       exchange.UseCase
}

func TestExchange(t *testing.T) {
	suite.Run(t, new(exchangeSuite))
}

func (s *exchangeSuite) SetupTest() {
	s.repo = &mExchange.Repo{}
	s.activity = &mExchange.ActivityRepo{}
	s.custody = &mCustody.Custody{}
	s.admin = &mAdmin.Usecase{}
	s.seq = 0

	s.repo.On("FindAll", mock.Anything).Return([]*exchange.Ask{}, nil)
	s.repo.On("GetMaxTradableTokenId", mock.Anything).Return(domain.TokenId(0), domain.ErrNotFound)
	s.repo.On("SetMaxTradableTokenId", mock.Anything, mock.Anything).Return(nil)
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.repo.On("Remove", mock.Anything, mock.Anything).Return(nil)
	s.repo.On("NextSequence", mock.Anything).Return(func(ctx.Ctx) uint64 {
		s.seq++
		return s.seq
	}, nil)

	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil)

	im, err := New(mockCtx, &Config{
		Book:                      repository.NewAskBook(),
		Repo:                      s.repo,
		Activity:                  s.activity,
		Custody:                   s.custody,
		Admin:                     s.admin,
		DefaultMaxTradableTokenId: 100,
	})
	s.Require().NoError(err)
	s.im = im
}

func (s *exchangeSuite) allowCustody(owner domain.Address) {
	s.custody.On("VerifyOwner", mock.Anything, mock.Anything, owner).Return(true, nil)
	s.custody.On("VerifyApproval", mock.Anything, mock.Anything).Return(true, nil)
}

func (s *exchangeSuite) TestReadyToSellToken() {
	s.allowCustody(alice)

	ask, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "12360000000000000000000")
	s.NoError(err)
	s.Equal(domain.TokenId(33), ask.TokenId)
	s.Equal(alice, ask.Seller)
	s.Equal(uint64(1), ask.Sequence)

	n, err := s.im.GetAskLength(mockCtx)
	s.NoError(err)
	s.Equal(1, n)
}

func (s *exchangeSuite) TestReadyToSellTokenBadPrice() {
	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "0")
	s.Equal(domain.ErrZeroPrice, err)

	_, err = s.im.ReadyToSellToken(mockCtx, alice, 33, "-5")
	s.Equal(domain.ErrZeroPrice, err)

	_, err = s.im.ReadyToSellToken(mockCtx, alice, 33, "12e")
	s.Equal(domain.ErrInvalidNumberFormat, err)
}

func (s *exchangeSuite) TestReadyToSellTokenExceedsCeiling() {
	_, err := s.im.ReadyToSellToken(mockCtx, alice, 101, "1000")
	s.Equal(domain.ErrExceedsMaxTradable, err)
}

func (s *exchangeSuite) TestReadyToSellTokenDuplicate() {
	s.allowCustody(alice)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.NoError(err)

	_, err = s.im.ReadyToSellToken(mockCtx, alice, 33, "2000")
	s.Equal(domain.ErrConflict, err)
}

func (s *exchangeSuite) TestReadyToSellTokenNotOwner() {
	s.custody.On("VerifyOwner", mock.Anything, mock.Anything, bob.ToLower()).Return(false, nil)

	_, err := s.im.ReadyToSellToken(mockCtx, bob, 33, "1000")
	s.Equal(domain.ErrCustodyRejected, err)

	n, _ := s.im.GetAskLength(mockCtx)
	s.Equal(0, n)
}

func (s *exchangeSuite) TestCancelSellToken() {
	s.allowCustody(alice)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.NoError(err)

	s.Equal(domain.ErrNotSeller, s.im.CancelSellToken(mockCtx, bob, 33))

	s.NoError(s.im.CancelSellToken(mockCtx, alice, 33))
	s.Equal(domain.ErrNotFound, s.im.CancelSellToken(mockCtx, alice, 33))

	n, _ := s.im.GetAskLength(mockCtx)
	s.Equal(0, n)
}

func (s *exchangeSuite) TestCancelSellTokens() {
	s.allowCustody(alice)

	for _, id := range []uint64{1, 2, 3} {
		_, err := s.im.ReadyToSellToken(mockCtx, alice, domain.TokenId(id), "1000")
		s.NoError(err)
	}

	res := s.im.CancelSellTokens(mockCtx, alice, []domain.TokenId{1, 9, 3})
	s.Len(res, 3)
	s.True(res[0].Canceled)
	s.False(res[1].Canceled)
	s.Equal(domain.ErrNotFound.Error(), res[1].Reason)
	s.True(res[2].Canceled)

	n, _ := s.im.GetAskLength(mockCtx)
	s.Equal(1, n)
}

func (s *exchangeSuite) TestBuyToken() {
	s.allowCustody(alice)
	s.custody.On("TransferPayment", mock.Anything, bob, alice, "1000").Return(nil)
	s.custody.On("TransferToken", mock.Anything, domain.TokenId(33), alice, bob).Return(nil)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.NoError(err)

	ask, err := s.im.BuyToken(mockCtx, bob, 33)
	s.NoError(err)
	s.Equal(alice, ask.Seller)

	n, _ := s.im.GetAskLength(mockCtx)
	s.Equal(0, n)
}

func (s *exchangeSuite) TestBuyTokenOwnAsk() {
	s.allowCustody(alice)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.NoError(err)

	_, err = s.im.BuyToken(mockCtx, alice, 33)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *exchangeSuite) TestBuyTokenPaymentRejected() {
	s.allowCustody(alice)
	s.custody.On("TransferPayment", mock.Anything, bob, alice, "1000").Return(domain.ErrCustodyRejected)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.NoError(err)

	_, err = s.im.BuyToken(mockCtx, bob, 33)
	s.Equal(domain.ErrCustodyRejected, err)

	// listing stays live
	n, _ := s.im.GetAskLength(mockCtx)
	s.Equal(1, n)
}

func (s *exchangeSuite) TestBuyTokenTransferFailsRefunds() {
	s.allowCustody(alice)
	s.custody.On("TransferPayment", mock.Anything, bob, alice, "1000").Return(nil)
	s.custody.On("TransferToken", mock.Anything, domain.TokenId(33), alice, bob).Return(domain.ErrCustodyRejected)
	s.custody.On("TransferPayment", mock.Anything, alice, bob, "1000").Return(nil)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.NoError(err)

	_, err = s.im.BuyToken(mockCtx, bob, 33)
	s.Equal(domain.ErrCustodyRejected, err)

	s.custody.AssertCalled(s.T(), "TransferPayment", mock.Anything, alice, bob, "1000")

	n, _ := s.im.GetAskLength(mockCtx)
	s.Equal(1, n)
}

func (s *exchangeSuite) TestBuyTokenRemoveFailsUnwindsSettlement() {
	repo := &mExchange.Repo{}
	repo.On("FindAll", mock.Anything).Return([]*exchange.Ask{}, nil)
	repo.On("GetMaxTradableTokenId", mock.Anything).Return(domain.TokenId(100), nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	repo.On("NextSequence", mock.Anything).Return(uint64(1), nil)
	repo.On("Remove", mock.Anything, domain.TokenId(33)).Return(domain.ErrInternalServerError)

	custody := &mCustody.Custody{}
	custody.On("VerifyOwner", mock.Anything, mock.Anything, alice).Return(true, nil)
	custody.On("VerifyApproval", mock.Anything, mock.Anything).Return(true, nil)
	custody.On("TransferPayment", mock.Anything, bob, alice, "1000").Return(nil)
	custody.On("TransferToken", mock.Anything, domain.TokenId(33), alice, bob).Return(nil)
	custody.On("TransferToken", mock.Anything, domain.TokenId(33), bob, alice).Return(nil)
	custody.On("TransferPayment", mock.Anything, alice, bob, "1000").Return(nil)

	activity := &mExchange.ActivityRepo{}
	activity.On("Insert", mock.Anything, mock.Anything).Return(nil)

	im, err := New(mockCtx, &Config{
		Book:                      repository.NewAskBook(),
		Repo:                      repo,
		Activity:                  activity,
		Custody:                   custody,
		Admin:                     &mAdmin.Usecase{},
		DefaultMaxTradableTokenId: 100,
	})
	s.Require().NoError(err)

	_, err = im.ReadyToSellToken(mockCtx, alice, 33, "1000")
	s.Require().NoError(err)

	_, err = im.BuyToken(mockCtx, bob, 33)
	s.Equal(domain.ErrInternalServerError, err)

	// both legs reversed, no assets stranded
	custody.AssertCalled(s.T(), "TransferToken", mock.Anything, domain.TokenId(33), bob, alice)
	custody.AssertCalled(s.T(), "TransferPayment", mock.Anything, alice, bob, "1000")

	// listing stays live
	n, _ := im.GetAskLength(mockCtx)
	s.Equal(1, n)
}

func (s *exchangeSuite) TestUpdateMaxTradableTokenId() {
	s.admin.On("IsAuthorizedAdmin", mock.Anything, carol).Return(false, nil)
	s.admin.On("IsAuthorizedAdmin", mock.Anything, alice).Return(true, nil)

	s.Equal(domain.ErrUnauthorized, s.im.UpdateMaxTradableTokenId(mockCtx, carol, 500))

	s.NoError(s.im.UpdateMaxTradableTokenId(mockCtx, alice, 500))
	ceiling, err := s.im.MaxTradableTokenId(mockCtx)
	s.NoError(err)
	s.Equal(domain.TokenId(500), ceiling)
}

func (s *exchangeSuite) TestLoweredCeilingIsNotRetroactive() {
	s.allowCustody(alice)
	s.admin.On("IsAuthorizedAdmin", mock.Anything, alice).Return(true, nil)

	_, err := s.im.ReadyToSellToken(mockCtx, alice, 80, "1000")
	s.NoError(err)

	s.NoError(s.im.UpdateMaxTradableTokenId(mockCtx, alice, 50))

	// live ask above the new ceiling survives and can still be bought
	asks, err := s.im.GetAsks(mockCtx)
	s.NoError(err)
	s.Len(asks, 1)

	// new listings above the ceiling are rejected
	_, err = s.im.ReadyToSellToken(mockCtx, alice, 60, "1000")
	s.Equal(domain.ErrExceedsMaxTradable, err)
}

func (s *exchangeSuite) TestGetActivities() {
	acts := []*exchange.Activity{{Id: "a1", Type: exchange.ActivityTypeBuy, TokenId: 33}}
	// ctx + tokenId/type filters + account + pagination
	s.activity.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(acts, nil)

	res, err := s.im.GetActivities(mockCtx, alice, 0, 20,
		exchange.ActivityWithTokenId(33),
		exchange.ActivityWithType(exchange.ActivityTypeBuy),
	)
	s.NoError(err)
	s.Len(res, 1)
	s.Equal(domain.TokenId(33), res[0].TokenId)

	_, err = s.im.GetActivities(mockCtx, alice, -1, 20)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.GetActivities(mockCtx, alice, 0, 0)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *exchangeSuite) TestPagination() {
	s.allowCustody(alice)

	for _, id := range []uint64{1, 2, 3, 4, 5} {
		_, err := s.im.ReadyToSellToken(mockCtx, alice, domain.TokenId(id), "1000")
		s.NoError(err)
	}

	page, err := s.im.GetAsksByPage(mockCtx, 1, 2)
	s.NoError(err)
	s.Len(page, 2)
	s.Equal(domain.TokenId(2), page[0].TokenId)
	s.Equal(domain.TokenId(3), page[1].TokenId)

	desc, err := s.im.GetAsksByPageDesc(mockCtx, 0, 2)
	s.NoError(err)
	s.Len(desc, 2)
	s.Equal(domain.TokenId(5), desc[0].TokenId)
	s.Equal(domain.TokenId(4), desc[1].TokenId)

	_, err = s.im.GetAsksByPage(mockCtx, -1, 2)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.GetAsksByPageDesc(mockCtx, 0, 0)
	s.Equal(domain.ErrBadParamInput, err)

	byUser, err := s.im.GetAsksByUser(mockCtx, alice)
	s.NoError(err)
	s.Len(byUser, 5)

	byUserDesc, err := s.im.GetAsksByUserDesc(mockCtx, alice)
	s.NoError(err)
	s.Equal(domain.TokenId(5), byUserDesc[0].TokenId)
}
