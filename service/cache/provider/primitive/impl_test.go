package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/service/cache/provider"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGetSet() {
	k := "key"
	v := []byte("value")

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))

	val, _, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, val)
}

func (ts *testsuite) TestDel() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	ts.NoError(ts.im.Del(mockCtx, k))

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)
}
