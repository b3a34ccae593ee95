package models

// DataType classifies a cell value into one of nine semantic types, with
// Other as the fallback for anything unrecognized.
type DataType string

const (
	TypeYear       DataType = "Year"
	TypeInteger    DataType = "Integer"
	TypeFloat      DataType = "Float"
	TypePercentage DataType = "Percentage"
	TypeScientific DataType = "Scientific"
	TypeDate       DataType = "Date"
	TypeTime       DataType = "Time"
	TypeCurrency   DataType = "Currency"
	TypeEmail      DataType = "Email"
	TypeOther      DataType = "Other"
)

// Valid reports whether t is a member of the closed enumeration.
func (t DataType) Valid() bool {
	switch t {
	case TypeYear, TypeInteger, TypeFloat, TypePercentage, TypeScientific,
		TypeDate, TypeTime, TypeCurrency, TypeEmail, TypeOther:
		return true
	}
	return false
}
