package date

import (
	"fmt"
	"strings"
)

// Period is a label granularity: the unit a time axis is graduated in.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Unit returns the plural unit name ("days", "weeks", ...).
func (p Period) Unit() string {
	switch p {
	case Daily:
		return "days"
	case Weekly:
		return "weeks"
	case Monthly:
		return "months"
	case Quarterly:
		return "quarters"
	case Yearly:
		return "years"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod accepts the adjective, the singular and the plural form of a period.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day", "days":
		return Daily, nil
	case "weekly", "week", "weeks":
		return Weekly, nil
	case "monthly", "month", "months":
		return Monthly, nil
	case "quarterly", "quarter", "quarters":
		return Quarterly, nil
	case "yearly", "year", "years":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// Label formats d the way an axis graduated in p displays it.
//
// Days and weeks are labelled "D/M" (no padding), months "Mon YY",
// quarters "Qn YY" and years "YYYY".
func (d Date) Label(p Period) string {
	switch p {
	case Daily, Weekly:
		return d.Format("2/1")
	case Monthly:
		return d.Format("Jan 06")
	case Quarterly:
		return fmt.Sprintf("Q%d %s", d.Quarter(), d.Format("06"))
	case Yearly:
		return d.Format("2006")
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
