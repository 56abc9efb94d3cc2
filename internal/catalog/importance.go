package catalog

// SeriesMeta describes one upstream economic series, as delivered by the
// external metadata collaborator. Dates stay as ISO YYYY-MM-DD strings so
// ordering comparisons match the upstream format byte-for-byte.
type SeriesMeta struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Frequency        string `json:"frequency"`
	Units            string `json:"units"`
	ObservationStart string `json:"observation_start"`
	ObservationEnd   string `json:"observation_end"`
	LastUpdated      string `json:"last_updated"`
	Popularity       int    `json:"popularity"`
}

// Widely used indicators in economics and finance, always kept regardless of
// popularity or update frequency.
var importantSeriesIDs = []string{
	"GDP",            // Gross Domestic Product
	"GDPC1",          // Real Gross Domestic Product
	"UNRATE",         // Unemployment Rate
	"CPIAUCSL",       // Consumer Price Index
	"FEDFUNDS",       // Federal Funds Effective Rate
	"SP500",          // S&P 500 Index
	"DGS10",          // 10-Year Treasury Constant Maturity Rate
	"PAYEMS",         // All Employees: Total Nonfarm
	"INDPRO",         // Industrial Production Index
	"PCE",            // Personal Consumption Expenditures
	"M2",             // M2 Money Stock
	"HOUST",          // Housing Starts
	"RSAFS",          // Retail Sales
	"USREC",          // NBER Recession Indicators
	"DCOILWTICO",     // Crude Oil Prices: WTI
	"GFDEGDQ188S",    // Federal Debt as % of GDP
	"T10Y2Y",         // 10-Year minus 2-Year Treasury
	"USAGDPDEFQISMEI", // GDP Implicit Price Deflator
	"UMCSENT",        // Consumer Sentiment Index
	"EXUSEU",         // U.S. / Euro Foreign Exchange Rate
	"DAAA",           // Moody's Seasoned Aaa Corporate Bond Yield
	"DBAA",           // Moody's Seasoned Baa Corporate Bond Yield
	"PCEPI",          // PCE Chain-type Price Index
}

// Classifier decides which series are worth keeping in the dashboard catalog.
type Classifier struct {
	// DiscontinuedBefore skips series whose observations ended before this
	// ISO date.
	DiscontinuedBefore string

	// PopularityThreshold keeps series whose popularity score (0-100)
	// exceeds it.
	PopularityThreshold int

	// HighUpdateFrequencies keeps series updated at any of these cadences.
	HighUpdateFrequencies []string

	// ImportantIDs are always kept.
	ImportantIDs []string
}

// NewClassifier creates a classifier with the catalog's shipped defaults
func NewClassifier() *Classifier {
	return &Classifier{
		DiscontinuedBefore:    "2023-01-01",
		PopularityThreshold:   50,
		HighUpdateFrequencies: []string{"Daily", "Weekly", "Monthly"},
		ImportantIDs:          importantSeriesIDs,
	}
}

// IsImportant reports whether a series should be kept. Discontinued series
// are always dropped; the remaining rules (popularity, update frequency,
// curated ID list) each suffice on their own.
func (c *Classifier) IsImportant(meta SeriesMeta) bool {
	if meta.ObservationEnd != "" && meta.ObservationEnd < c.DiscontinuedBefore {
		return false
	}

	if meta.Popularity > c.PopularityThreshold {
		return true
	}

	for _, frequency := range c.HighUpdateFrequencies {
		if meta.Frequency == frequency {
			return true
		}
	}

	for _, id := range c.ImportantIDs {
		if meta.ID == id {
			return true
		}
	}

	return false
}

// FilterImportant returns the important subset of the given series, in the
// original order.
func (c *Classifier) FilterImportant(series []SeriesMeta) []SeriesMeta {
	var kept []SeriesMeta
	for _, meta := range series {
		if c.IsImportant(meta) {
			kept = append(kept, meta)
		}
	}
	return kept
}
