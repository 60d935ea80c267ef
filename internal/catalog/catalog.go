// Package catalog holds the backing sequences every documentation panel is
// projected from. The data is declared once at package level and only ever
// handed out as copies.
package catalog

// Section anchors. External navigation links to these, keep them verbatim.
const (
	AnchorOverview  = "overview"
	AnchorFeatures  = "features"
	AnchorTechStack = "tech-stack"
	AnchorSecurity  = "security"
)

// FeatureEntry is one row of the features panel.
type FeatureEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// TechCategory groups technology names under a heading.
type TechCategory struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// SecurityMeasure is display text only; nothing here implements it.
type SecurityMeasure string

// Step is one quick start instruction.
type Step struct {
	Key     string `json:"key" yaml:"key"`
	Title   string `json:"title" yaml:"title"`
	Command string `json:"command" yaml:"command"`
}

// Overview is the heading, paragraph and quick start list of the overview panel.
type Overview struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Steps       []Step `json:"steps" yaml:"steps"`
}

// Snapshot bundles every backing sequence, in page order.
type Snapshot struct {
	Overview  Overview          `json:"overview" yaml:"overview"`
	Features  []FeatureEntry    `json:"features" yaml:"features"`
	TechStack []TechCategory    `json:"tech_stack" yaml:"tech_stack"`
	Security  []SecurityMeasure `json:"security" yaml:"security"`
}

var overview = Overview{
	Title: "Procurement Tracker",
	Description: "A web application for raising, approving and tracking purchase requests. " +
		"Requesters submit orders, approvers sign them off, and finance follows every order " +
		"from request to delivery in one place.",
	Steps: []Step{
		{Key: "clone", Title: "Clone the repository", Command: "git clone https://github.com/Makepad-fr/procurement-tracker.git"},
		{Key: "install", Title: "Install dependencies", Command: "npm install"},
		{Key: "configure", Title: "Configure environment variables", Command: "cp .env.example .env.local"},
		{Key: "run", Title: "Run the development server", Command: "npm run dev"},
	},
}

var features = []FeatureEntry{
	{Title: "Purchase Requests", Description: "Create, edit and submit purchase requests with line items and attachments.", Enabled: true},
	{Title: "Approval Workflow", Description: "Route requests through multi-level approval based on amount and department.", Enabled: true},
	{Title: "Vendor Management", Description: "Keep vendor contacts, contracts and performance history in one directory.", Enabled: true},
	{Title: "Order Tracking", Description: "Follow every order from approval to delivery with status updates.", Enabled: true},
	{Title: "Budget Monitoring", Description: "Compare committed spend against departmental budgets in real time.", Enabled: true},
	{Title: "Reports", Description: "Export spend, lead time and vendor reports as CSV or PDF.", Enabled: true},
}

var techStack = []TechCategory{
	{Category: "Frontend", Items: []string{"Next.js 14", "React 18", "TypeScript", "Tailwind CSS"}},
	{Category: "Backend", Items: []string{"Next.js API Routes", "Prisma ORM", "Zod"}},
	{Category: "Database", Items: []string{"PostgreSQL (Neon)", "Redis (Upstash)"}},
	{Category: "Authentication", Items: []string{"NextAuth.js", "JWT"}},
	{Category: "Deployment", Items: []string{"Vercel", "GitHub Actions"}},
	{Category: "Testing", Items: []string{"Jest", "React Testing Library", "Playwright"}},
}

var securityMeasures = []SecurityMeasure{
	"JWT-based authentication with HTTP-only cookies",
	"Role-based access control for requesters, approvers and admins",
	"SQL injection prevention through Prisma's prepared statements",
	"Input validation with Zod schemas on every API route",
	"Rate limiting on authentication and API endpoints",
	"Audit trail of every approval decision",
}

// QuickStart returns the overview panel content.
func QuickStart() Overview {
	o := overview
	o.Steps = append([]Step(nil), overview.Steps...)
	return o
}

// Features returns the feature list in display order.
func Features() []FeatureEntry {
	return append([]FeatureEntry(nil), features...)
}

// TechStack returns the technology categories in display order.
func TechStack() []TechCategory {
	out := make([]TechCategory, 0, len(techStack))
	for _, tc := range techStack {
		out = append(out, TechCategory{
			Category: tc.Category,
			Items:    append([]string(nil), tc.Items...),
		})
	}
	return out
}

// SecurityMeasures returns the security measures in display order.
func SecurityMeasures() []SecurityMeasure {
	return append([]SecurityMeasure(nil), securityMeasures...)
}

// Current returns a snapshot of all built-in data.
func Current() Snapshot {
	return Snapshot{
		Overview:  QuickStart(),
		Features:  Features(),
		TechStack: TechStack(),
		Security:  SecurityMeasures(),
	}
}
