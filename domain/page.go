package domain

// PageID is the closed set of portal pages reachable after authentication.
type PageID string

const (
	PageHome        PageID = "home"
	PageDiagnostics PageID = "diagnostics"
	PageAbout       PageID = "about"
	PageFeedback    PageID = "feedback"
)

// ParsePage maps raw navigation input to a PageID.
// Unknown values fail closed to the Home page so a corrupted or forged
// page selection can never escape the known navigation surface.
func ParsePage(raw string) PageID {
	switch PageID(raw) {
	case PageHome, PageDiagnostics, PageAbout, PageFeedback:
		return PageID(raw)
	default:
		return PageHome
	}
}
