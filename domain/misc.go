package domain

import (
	"strconv"
	"strings"
)

// Table is a mongo collection name
type Table string

const (
	TableAsks            Table = "asks"
	TableCounters        Table = "counters"
	TableSettings        Table = "settings"
	TableTokenOwners     Table = "token_owners"
	TablePaymentBalances Table = "payment_balances"
	TableAdmins          Table = "admins"
	TableActivities      Table = "activities"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is a numeric nft identifier. Numeric instead of a hex string since
// the tradable ceiling check compares ids by value.
type TokenId uint64

func (i TokenId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func ParseTokenId(s string) (TokenId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidNumberFormat
	}
	return TokenId(id), nil
}
