package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", ads)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	_, err := u.ParseToken(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	assert.NoError(t, err)

	other := usecase.New("other-secret")
	_, err = other.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
