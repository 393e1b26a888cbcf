package domain

// PageConfig selects the two series compared on one page.
type PageConfig struct {
	Index          int
	Primary        Series
	Secondary      Series
	PrimaryLabel   string
	SecondaryLabel string
}
