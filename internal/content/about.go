package content

const About = "ATTMOC (Attieh Ministry of Code) is a team of passionate designers, developers, and strategists. " +
	"We help businesses grow with modern digital solutions that combine cutting-edge technology with " +
	"exceptional user experiences."

type Fact struct {
	Value string
	Label string
}

var AboutFacts = []Fact{
	{"2020", "Founded"},
	{"20+", "Team Members"},
	{"150+", "Projects"},
}

// Page copy for the navigation entries that have no section of their own.
const (
	FAQIntro     = "Questions about a project? Send them through the contact form and we reply within one business day."
	CareersIntro = "We are always looking for designers and engineers who care about craft. Introduce yourself through the contact form."
	QuoteIntro   = "Tell us about your project with `attmoc contact` and we will come back with a scoped estimate."
)
