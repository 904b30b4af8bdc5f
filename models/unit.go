package models

// Unit is the measure a product or variant is sold in.
type Unit string

const (
	UnitGram     Unit = "gram"
	UnitKilogram Unit = "kilogram"
	UnitPiece    Unit = "piece"
	UnitDozen    Unit = "dozen"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitPiece, UnitDozen:
		return true
	}
	return false
}
