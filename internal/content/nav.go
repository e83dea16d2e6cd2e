package content

// NavItem is one entry of the navigation bar. Section items scroll the
// landing page; Page items open a separate page.
type NavItem struct {
	ID    string
	Label string
	Page  bool
}

// Sections are always present, in this order.
var Sections = []NavItem{
	{ID: "hero", Label: "Home"},
	{ID: "services", Label: "Services"},
	{ID: "portfolio", Label: "Portfolio"},
	{ID: "about", Label: "About"},
	{ID: "contact", Label: "Contact"},
	{ID: "faq", Label: "FAQ"},
}

// Features selects the optional pages.
type Features struct {
	Careers bool
	Quote   bool
	Blog    bool
}

// NavItems returns the sections followed by every enabled page, in the
// order careers, quote, blog.
func NavItems(f Features) []NavItem {
	items := append([]NavItem(nil), Sections...)
	if f.Careers {
		items = append(items, NavItem{ID: "careers", Label: "Careers", Page: true})
	}
	if f.Quote {
		items = append(items, NavItem{ID: "quote", Label: "Get a Quote", Page: true})
	}
	if f.Blog {
		items = append(items, NavItem{ID: "blog", Label: "Blog", Page: true})
	}
	return items
}
