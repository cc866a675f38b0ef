package state

// Page identifies one dashboard tab.
type Page int

const (
	PageDashboard Page = iota
	PageProjects
	PageProtocols
	PageSteps
	PageEvents
	PageQueues
	PageSettings

	pageCount
)

// Pages returns all tabs in display order.
func Pages() []Page {
	pages := make([]Page, 0, pageCount)
	for p := PageDashboard; p < pageCount; p++ {
		pages = append(pages, p)
	}
	return pages
}

// PageAt maps a 1-based ordinal (the digit shortcuts) to a page.
func PageAt(n int) (Page, bool) {
	if n < 1 || n > int(pageCount) {
		return PageDashboard, false
	}
	return Page(n - 1), true
}

// Next returns the following tab, wrapping after the last.
func (p Page) Next() Page { return Page((int(p) + 1) % int(pageCount)) }

// Prev returns the preceding tab, wrapping before the first.
func (p Page) Prev() Page { return Page((int(p) + int(pageCount) - 1) % int(pageCount)) }

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageProjects:
		return "Projects"
	case PageProtocols:
		return "Protocols"
	case PageSteps:
		return "Steps"
	case PageEvents:
		return "Events"
	case PageQueues:
		return "Queues"
	case PageSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}
