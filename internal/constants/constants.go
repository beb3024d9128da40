package constants

// AppName is used for config paths, the keyring service name, and log prefixes
const AppName = "habitgrid"

// DateFormat is the canonical day key format (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// MonthFormat parses --month style arguments (YYYY-MM)
const MonthFormat = "2006-01"

// FreeHabitLimit is the maximum number of habits a non-premium account may hold
const FreeHabitLimit = 5

// DefaultTarget is the fallback target (days per period) when a habit has none
const DefaultTarget = 20

// WeeksPerMonth converts a weekly target into a monthly one for display
const WeeksPerMonth = 4.33

// Keyring account names under the AppName service
const (
	KeyringUserAccount    = "user"
	KeyringLicenseAccount = "license"
)

// DefaultUserID identifies the local profile when no account has been set
const DefaultUserID = "local"

// DefaultConfigPath is the default sqlite database location
const DefaultConfigPath = "~/.config/habitgrid/habitgrid.db"
