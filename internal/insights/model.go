package insights

// Summary holds the two headline metrics over open locations.
type Summary struct {
	OpenCount int `json:"open_count"`
	ZipCount  int `json:"zip_count"`
}

const (
	TypeDelivery = "Delivery"
	TypeDineIn   = "Dine-in"
)

// AggregateRow is one bar of the delivery vs dine-in chart. Column
// names follow the charted table: TYPE, # OF RESTAURANTS.
type AggregateRow struct {
	Type  string `json:"TYPE"`
	Count int    `json:"# OF RESTAURANTS"`
}

// Aggregate is a two-row table. The rows are independent totals, not a
// partition: a location offering both is counted in both.
type Aggregate struct {
	Rows []AggregateRow `json:"rows"`
}

func (a Aggregate) Count(typ string) int {
	for _, r := range a.Rows {
		if r.Type == typ {
			return r.Count
		}
	}
	return 0
}
