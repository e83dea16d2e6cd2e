// Package content holds the static copy of the agency site: services,
// stats, portfolio, tech stack, blog posts and navigation.
package content

// Agency is the brand shown in headers.
const (
	Agency  = "ATTMOC"
	Tagline = "Digital Excellence Since 2020"
)

type Service struct {
	Title       string
	Description string
}

var Services = []Service{
	{"Website Development", "Responsive, SEO-friendly websites using React, Next.js, and Tailwind CSS."},
	{"Web App Solutions", "Custom web applications for business automation and customer engagement."},
	{"Mobile App Development", "Cross-platform mobile apps built with React Native and Flutter."},
	{"Branding & Design", "Logo, identity, and UI/UX design to elevate your brand presence."},
}

type Stat struct {
	Label  string
	Value  int
	Suffix string
}

var Stats = []Stat{
	{"Projects Completed", 150, "+"},
	{"Happy Clients", 120, "+"},
	{"Years Experience", 10, "+"},
	{"Team Members", 12, "+"},
}

type Project struct {
	Title       string
	Description string
}

var Portfolio = []Project{
	{"E-Commerce Platform", "Built with Next.js, Stripe, and Sanity CMS. Increased sales by 40% for our client."},
	{"Brand Identity for Startup", "Logo, website, and mobile app for a fintech startup. Won a design award in 2025."},
}

type Technology struct {
	Name string
	Icon string
}

var TechStack = []Technology{
	{"React", "⚛"},
	{"Next.js", "▲"},
	{"TypeScript", "TS"},
	{"Tailwind", "🎨"},
	{"Node.js", "🟢"},
	{"AI/ML", "🤖"},
	{"Azure", "☁"},
	{"Mobile", "📱"},
}
