package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	mQuery "github.com/dishswap/exchange-api/service/query/mocks"
)

func TestTransferGuards(t *testing.T) {
	req := require.New(t)
	mockCtx := ctx.Background()
	alice := domain.Address("0xaa00000000000000000000000000000000000001")
	bob := domain.Address("0xbb00000000000000000000000000000000000002")

	q := &mQuery.Mongo{}
	registry := NewRegistry(q)

	// a self transfer would read one account twice and net a credit
	req.Equal(domain.ErrCustodyRejected, registry.TransferPayment(mockCtx, alice, alice, "10"))
	req.Equal(domain.ErrCustodyRejected,
		registry.TransferPayment(mockCtx, alice, domain.Address("0xAA00000000000000000000000000000000000001"), "10"))
	req.Equal(domain.ErrCustodyRejected, registry.TransferToken(mockCtx, 33, alice, alice))

	// the zero address cannot hold assets
	req.Equal(domain.ErrCustodyRejected, registry.TransferPayment(mockCtx, alice, domain.EmptyAddress, "10"))
	req.Equal(domain.ErrCustodyRejected, registry.TransferToken(mockCtx, 33, alice, domain.EmptyAddress))
	req.Equal(domain.ErrCustodyRejected, registry.TransferPayment(mockCtx, alice, domain.Address(""), "10"))

	// amount validation still precedes everything
	req.Equal(domain.ErrInvalidNumberFormat, registry.TransferPayment(mockCtx, alice, bob, "12e"))
	req.Equal(domain.ErrCustodyRejected, registry.TransferPayment(mockCtx, alice, bob, "0"))

	// none of the rejected transfers ever reached the database
	q.AssertNotCalled(t, "RunWithTransaction", mock.Anything, mock.Anything)
}
