package model

// PriceObservation is one (date, constituent, price) cell from the
// price panel CSV. Dates are opaque strings compared lexically, so the
// uploaded file must use a lexically sortable format such as 2006-01-02.
type PriceObservation struct {
	Date        string  `json:"date"`
	Constituent string  `json:"constituent"`
	Price       float64 `json:"price"`
}

// DateRange holds the lexical min and max date seen in a price panel.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// PricePanel is the parsed price-panel snapshot: observations in file
// order plus the derived constituent list and date range. The date
// range is computed over every row that carried a date, including rows
// where no cell parsed as a number.
type PricePanel struct {
	Prices       []PriceObservation `json:"prices"`
	Constituents []string           `json:"constituents"`
	DateRange    DateRange          `json:"dateRange"`
}

// DatedPrice is the value side of the latest-price index: the price a
// constituent had on its most recent observed date.
type DatedPrice struct {
	Date  string
	Price float64
}

// ValuationPoint is the portfolio value on a single date: the sum of
// weight times price over all holdings, with missing prices counted as
// zero. The JSON field is "price" to match the chart consumer.
type ValuationPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"price"`
}
