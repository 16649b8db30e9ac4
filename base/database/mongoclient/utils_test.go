package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dishswap/exchange-api/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)

	type record struct {
		TokenId  uint64  `bson:"tokenId"`
		Seller   string  `bson:"seller"`
		Price    *string `bson:"price,omitempty"`
		Sequence uint64  `bson:"sequence,omitempty"`
	}

	m, err := MakeBsonM(&record{
		TokenId: 33,
		Seller:  "0x65b1d445ac80614a0a2bfecc492f458f88657264",
		Price:   ptr.String("12360000000000000000000"),
	})
	req.NoError(err)
	req.Equal(uint64(33), m["tokenId"])
	req.Equal("0x65b1d445ac80614a0a2bfecc492f458f88657264", m["seller"])
	req.Equal("12360000000000000000000", m["price"])
	_, ok := m["sequence"]
	req.False(ok, "zero omitempty field should be skipped")
}
