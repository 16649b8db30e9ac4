package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/custody"
	mCustody "github.com/dishswap/exchange-api/domain/custody/mocks"
)

var (
	mockCtx = ctx.Background()
	alice   = domain.Address("0xaa00000000000000000000000000000000000001")
	bob     = domain.Address("0xbb00000000000000000000000000000000000002")
)

type custodySuite struct {
	suite.Suite
	repo *mCustody.Repo
	im   custody.Custody
}

func TestCustody(t *testing.T) {
	suite.Run(t, new(custodySuite))
}

func (s *custodySuite) SetupTest() {
	s.repo = &mCustody.Repo{}
	s.im = New(&Config{Repo: s.repo})
}

func (s *custodySuite) TestVerifyOwner() {
	s.repo.On("GetOwnership", mock.Anything, domain.TokenId(33)).
		Return(&custody.TokenOwnership{TokenId: 33, Owner: alice, Approved: true}, nil)
	s.repo.On("GetOwnership", mock.Anything, domain.TokenId(99)).
		Return(nil, domain.ErrNotFound)

	ok, err := s.im.VerifyOwner(mockCtx, 33, alice)
	s.NoError(err)
	s.True(ok)

	// address comparison ignores case
	ok, err = s.im.VerifyOwner(mockCtx, 33, domain.Address("0xAA00000000000000000000000000000000000001"))
	s.NoError(err)
	s.True(ok)

	ok, err = s.im.VerifyOwner(mockCtx, 33, bob)
	s.NoError(err)
	s.False(ok)

	ok, err = s.im.VerifyOwner(mockCtx, 99, alice)
	s.NoError(err)
	s.False(ok)
}

func (s *custodySuite) TestVerifyApproval() {
	s.repo.On("GetOwnership", mock.Anything, domain.TokenId(33)).
		Return(&custody.TokenOwnership{TokenId: 33, Owner: alice, Approved: true}, nil)
	s.repo.On("GetOwnership", mock.Anything, domain.TokenId(34)).
		Return(&custody.TokenOwnership{TokenId: 34, Owner: alice, Approved: false}, nil)

	ok, err := s.im.VerifyApproval(mockCtx, 33)
	s.NoError(err)
	s.True(ok)

	ok, err = s.im.VerifyApproval(mockCtx, 34)
	s.NoError(err)
	s.False(ok)
}

func (s *custodySuite) TestGetPaymentBalance() {
	s.repo.On("GetAccount", mock.Anything, alice).
		Return(&custody.PaymentAccount{Address: alice, Balance: "150.5"}, nil)
	s.repo.On("GetAccount", mock.Anything, bob).
		Return(nil, domain.ErrNotFound)

	res, err := s.im.GetPaymentBalance(mockCtx, alice)
	s.NoError(err)
	s.Equal("150.5", res.Custodial)
	s.Empty(res.Wallet)

	// unknown accounts read as zero instead of erroring
	res, err = s.im.GetPaymentBalance(mockCtx, bob)
	s.NoError(err)
	s.Equal("0", res.Custodial)
}

func (s *custodySuite) TestTransferToken() {
	s.repo.On("TransferToken", mock.Anything, domain.TokenId(33), alice, bob).Return(nil)
	s.repo.On("TransferToken", mock.Anything, domain.TokenId(34), alice, bob).Return(domain.ErrCustodyRejected)

	s.NoError(s.im.TransferToken(mockCtx, 33, alice, bob))
	s.Equal(domain.ErrCustodyRejected, s.im.TransferToken(mockCtx, 34, alice, bob))
}

func (s *custodySuite) TestTransferPayment() {
	s.repo.On("TransferPayment", mock.Anything, bob, alice, "1000").Return(nil)
	s.repo.On("TransferPayment", mock.Anything, alice, bob, "1000").Return(domain.ErrCustodyRejected)

	s.NoError(s.im.TransferPayment(mockCtx, bob, alice, "1000"))
	s.Equal(domain.ErrCustodyRejected, s.im.TransferPayment(mockCtx, alice, bob, "1000"))
}
