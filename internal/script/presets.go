package script

import (
	"fmt"
	"time"
)

// Preset bundles a script with its timing and mode.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Title       string `yaml:"title"`
	Mode        Mode   `yaml:"mode"`
	Timing      Timing `yaml:"timing"`
	Lines       Script `yaml:"lines"`
}

// Validate checks that p can drive a sequencer.
func (p Preset) Validate() error {
	if len(p.Lines) == 0 {
		return ErrEmptyScript
	}
	if _, err := ParseMode(string(p.Mode)); err != nil {
		return err
	}
	if err := p.Timing.Validate(); err != nil {
		return err
	}
	if p.Timing.LoopDuration(p.Lines) <= 0 {
		return fmt.Errorf("%w: a full loop must take time", ErrInvalidTiming)
	}
	return nil
}

var (
	TerminalTiming = Timing{CharDelay: 30 * time.Millisecond, LineDelay: 200 * time.Millisecond, LoopDelay: 2 * time.Second}
	SimpleTiming   = Timing{CharDelay: 30 * time.Millisecond, LineDelay: 200 * time.Millisecond, LoopDelay: 3 * time.Second}
	EditorTiming   = Timing{CharDelay: 15 * time.Millisecond, LineDelay: 1400 * time.Millisecond}
)

var deploymentLines = Script{
	"$ npm create next-app@latest",
	"✓ Creating a new Next.js project...",
	"$ cd attmoc-client-project",
	"$ npm install && npm run build",
	"✓ Build completed in 2.4s",
	"$ npm test",
	"✓ All tests passed (24/24)",
	"$ docker build -t attmoc/app .",
	"✓ Container built successfully",
	"$ kubectl apply -f deployment.yml",
	"✓ Deployed to production",
	"$ vercel deploy --prod",
	"✓ Live at https://your-app.vercel.app",
	"",
	"> Project 1 Complete - Full Stack Deployment",
	"",
	"$ npx create-next-app web-app",
	"$ npx react-native init MobileApp",
	"$ npm install @azure/functions",
	"✓ Setting up cloud infrastructure...",
	"$ npm run deploy",
	"✓ Web app deployed ✓ Mobile app published",
	"",
	"> ATTMOC - Building for web, mobile & cloud",
	"",
}

var quickstartLines = Script{
	"$ npm create next-app@latest",
	"✓ Creating a new Next.js project...",
	"$ cd attmoc-client-project",
	"$ npm install react typescript tailwind",
	"✓ Installing dependencies...",
	"$ npm run dev",
	"✨ Building your digital future...",
	"✓ Ready on http://localhost:3000",
	"",
	"> ATTMOC - Code that transforms businesses",
}

var editorBlocks = Script{
	"// Navbar Component\n<nav className=\"flex items-center\n  gap-6 px-4\">\n  <a className=\"flex items-center gap-3\">\n    <img src=\"/AttMOC_logo.png\" />\n    <span className=\"font-bold text-xl\">ATTMOC</span>\n  </a>\n  <div className=\"flex gap-6\">\n    <Link href=\"#hero\">Home</Link>\n    <Link href=\"#services\">Services</Link>\n    <Link href=\"#portfolio\">Portfolio</Link>\n    <Link href=\"#about\">About</Link>\n    <Link href=\"#contact\">Contact</Link>\n  </div>\n</nav>",
	"// Hero Section\n<section className=\"min-h-screen\n  flex items-center justify-center\">\n  <div className=\"text-center\">\n    <h1 className=\"text-5xl font-bold\">\n      Build Your Digital Future\n    </h1>\n  </div>\n</section>",
	"// Add engaging subtext\n<p className=\"text-xl text-gray-600\n  mt-4 max-w-2xl\">\n  We create modern websites, apps\n  and brands that transform your\n  business vision into reality.\n</p>",
	"// Call-to-Action Button\n<button className=\"mt-8 px-8 py-4\n  bg-emerald-500 text-white\n  rounded-lg font-semibold\">\n  Get Started Today\n</button>",
}

// Presets holds the built-in scripts keyed by name.
var Presets = map[string]Preset{
	"terminal": {
		Name: "terminal", Title: "terminal — attmoc", Mode: ModeTerminal, Timing: TerminalTiming,
		Description: "full stack deployment session", Lines: deploymentLines,
	},
	"simple": {
		Name: "simple", Title: "terminal — attmoc", Mode: ModeTerminal, Timing: SimpleTiming,
		Description: "project quickstart", Lines: quickstartLines,
	},
	"editor": {
		Name: "editor", Title: "App.tsx", Mode: ModeEditor, Timing: EditorTiming,
		Description: "landing page built one component at a time", Lines: editorBlocks,
	},
}

// DefaultPreset is used when no preset is named.
const DefaultPreset = "terminal"
