package registry

import (
	"math"
	"strconv"
)

// TokenID identifies a token. Identifiers are assigned from 0 upwards.
type TokenID uint32

// MaxTokenID is the largest value the counter can hold. It is never assigned
// to a token: reaching it means the identifier space is exhausted.
const MaxTokenID TokenID = math.MaxUint32

func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseTokenID parses a decimal token identifier.
func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return TokenID(v), nil
}

// Identity is an opaque caller identity. Two identities are the same caller
// when they are equal.
type Identity string

// Record is the data stored with a token. Item is fixed at mint time.
type Record struct {
	Username string
	Item     string
}

// Token is a minted token together with its current owner.
type Token struct {
	ID     TokenID
	Owner  Identity
	Record Record
}

// TransferEvent reports an ownership change. From is nil for a mint.
type TransferEvent struct {
	From    *Identity
	To      Identity
	TokenID TokenID
}

// IsMint reports whether the event was produced by a mint.
func (e TransferEvent) IsMint() bool {
	return e.From == nil
}
