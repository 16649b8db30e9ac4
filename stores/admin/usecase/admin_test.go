package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/admin"
	mAdmin "github.com/dishswap/exchange-api/domain/admin/mocks"
)

func TestIsAuthorizedAdmin(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	staticAdmin := domain.Address("0xAA00000000000000000000000000000000000001")
	dbAdmin := domain.Address("0xbb00000000000000000000000000000000000002")
	nobody := domain.Address("0xcc00000000000000000000000000000000000003")

	repo := &mAdmin.Repo{}
	repo.On("FindOne", mock.Anything, dbAdmin).Return(&admin.Admin{Address: dbAdmin, Name: "ops"}, nil)
	repo.On("FindOne", mock.Anything, nobody).Return(nil, nil)

	u := New(repo, []domain.Address{staticAdmin})

	// static admins never hit the repo, lookup ignores case
	ok, err := u.IsAuthorizedAdmin(c, staticAdmin.ToLower())
	req.NoError(err)
	req.True(ok)

	ok, err = u.IsAuthorizedAdmin(c, dbAdmin)
	req.NoError(err)
	req.True(ok)

	ok, err = u.IsAuthorizedAdmin(c, nobody)
	req.NoError(err)
	req.False(ok)
}
