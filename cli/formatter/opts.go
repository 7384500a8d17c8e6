package formatter

// Opts contains formatting options.
type Opts struct {
	// TableDialect sets a current table dialect.
	TableDialect TableDialect
	// NoColor disables colored statuses.
	NoColor bool
}
