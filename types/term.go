package types

// TermUsage describes how often and in which contexts a term appears.
type TermUsage struct {
	Frequency string   `json:"frequency"`
	Contexts  []string `json:"contexts"`
}

// LegalReference points at an authoritative source for a term.
type LegalReference struct {
	Source      string `json:"source"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Translation is a term rendered in another language.
type Translation struct {
	Language    string `json:"language"`
	Translation string `json:"translation"`
}

// TermFilter is the allow-listed filter set for glossary queries. When
// Search is set, relevance ranking applies and Sort is ignored; the two
// are mutually exclusive per request.
type TermFilter struct {
	Category   string
	Complexity string
	Search     string
	Sort       string
}
