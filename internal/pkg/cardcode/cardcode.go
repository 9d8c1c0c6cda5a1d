// Package cardcode encodes member ids into the short codes printed on meal cards.
package cardcode

import (
	"strings"

	"canteen-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

var ErrInvalidCode = errs.New("invalid card code")

type Codec struct {
	prefix string
}

func NewCodec(prefix string) *Codec {
	return &Codec{prefix: prefix}
}

func (c *Codec) Encode(memberID uuid.UUID) string {
	return c.prefix + base58.Encode(memberID[:])
}

func (c *Codec) Decode(code string) (uuid.UUID, error) {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, c.prefix) {
		return uuid.Nil, ErrInvalidCode
	}
	raw, err := base58.Decode(strings.TrimPrefix(code, c.prefix))
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCode)
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCode)
	}
	return id, nil
}
