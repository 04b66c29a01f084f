package constants

const (
	// Source drivers
	DriverJSON   = "json"
	DriverSQLite = "sqlite"

	// Output formats
	FormatTable = "table"
	FormatJSON  = "json"

	TopSenderNone = "None"

	AppName       = "txstats"
	EnvPrefix     = "TXSTATS"
	DBFileName    = "txstats.db"
	DefaultTopN   = 3
	AmountDecimal = 2
)
