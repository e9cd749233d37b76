package constants

const (
	// Date Layouts
	DateFormat      = "2006-01-02"
	InputDateLayout = "20060102"
	MonthLayout     = "200601"

	// Interest
	DefaultDaysInYear = 365
	DefaultScale      = 2
	MaxRatePercent    = 100

	// Transaction ids are "<yyyymmdd>-<NN>"
	TxnIDSeparator = "-"
)
