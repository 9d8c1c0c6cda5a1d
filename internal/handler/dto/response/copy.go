package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// copyOptions renders ids as strings the way every response in this package does.
var copyOptions = copier.Option{
	IgnoreEmpty: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: &uuid.UUID{},
			DstType: new(string),
			Fn: func(src any) (any, error) {
				id := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
	},
}
