package views

import (
	"fmt"
	"time"
)

// Variant is the display mode of a shoe card.
type Variant int

const (
	VariantDefault Variant = iota
	VariantOnSale
	VariantNewRelease
)

var variantNames = [...]string{
	VariantDefault:    "default",
	VariantOnSale:     "on-sale",
	VariantNewRelease: "new-release",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// MarshalText encodes the variant as its label.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a variant label.
func (v *Variant) UnmarshalText(text []byte) error {
	for i, name := range variantNames {
		if name == string(text) {
			*v = Variant(i)
			return nil
		}
	}
	return fmt.Errorf("unknown variant %q", text)
}

// ShoeCardProps are the display attributes of one shoe. Prices are in cents;
// a nil SalePrice means the shoe is not on sale.
type ShoeCardProps struct {
	Slug        string
	Name        string
	ImageSrc    string
	Price       int
	SalePrice   *int
	ReleaseDate time.Time
	NumOfColors int
}

// Classify picks the card variant. A sale price wins over newness.
func Classify(props ShoeCardProps, isNew func(time.Time) bool) Variant {
	switch {
	case props.SalePrice != nil:
		return VariantOnSale
	case isNew(props.ReleaseDate):
		return VariantNewRelease
	default:
		return VariantDefault
	}
}
