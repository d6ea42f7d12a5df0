package underwriting

import (
	"fmt"

	"github.com/etnz/underwriting/date"
)

// Statutory 1031 exchange periods, in days after the sale closes.
const (
	IdentificationPeriodDays = 45
	ExchangePeriodDays       = 180
)

// Exchange1031Input is the relinquished property sale to track.
type Exchange1031Input struct {
	SaleCloseDate date.Date `json:"saleCloseDate"`
	AsOf          date.Date `json:"asOf"`
}

// ParseExchange1031Input parses the sale close date and the as-of date. An
// empty asOf is today.
func ParseExchange1031Input(saleCloseDate, asOf string) (Exchange1031Input, error) {
	sale, err := date.Parse(saleCloseDate)
	if err != nil {
		return Exchange1031Input{}, fmt.Errorf("sale close date: %w", err)
	}
	in := Exchange1031Input{SaleCloseDate: sale, AsOf: date.Today()}
	if asOf != "" {
		if in.AsOf, err = date.Parse(asOf); err != nil {
			return Exchange1031Input{}, fmt.Errorf("as-of date: %w", err)
		}
	}
	return in, nil
}

// Exchange1031Deadlines are the identification and closing deadlines of an
// exchange, and where the as-of date stands.
type Exchange1031Deadlines struct {
	SaleCloseDate          date.Date `json:"saleCloseDate"`
	AsOf                   date.Date `json:"asOf"`
	IdentificationDeadline date.Date `json:"identificationDeadline"`
	ClosingDeadline        date.Date `json:"closingDeadline"`
	DaysToIdentification   int       `json:"daysToIdentification"`
	DaysToClosing          int       `json:"daysToClosing"`
	IdentificationExpired  bool      `json:"identificationExpired"`
	ClosingExpired         bool      `json:"closingExpired"`
}

// Calculate1031Deadlines returns the deadlines of an exchange. A deadline
// expires the day after it falls; days remaining never go below 0.
func Calculate1031Deadlines(in Exchange1031Input) Exchange1031Deadlines {
	res := Exchange1031Deadlines{
		SaleCloseDate:          in.SaleCloseDate,
		AsOf:                   in.AsOf,
		IdentificationDeadline: in.SaleCloseDate.Add(IdentificationPeriodDays),
		ClosingDeadline:        in.SaleCloseDate.Add(ExchangePeriodDays),
	}
	res.DaysToIdentification = max(0, res.IdentificationDeadline.Sub(in.AsOf))
	res.DaysToClosing = max(0, res.ClosingDeadline.Sub(in.AsOf))
	res.IdentificationExpired = in.AsOf.After(res.IdentificationDeadline)
	res.ClosingExpired = in.AsOf.After(res.ClosingDeadline)
	return res
}
