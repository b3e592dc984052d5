// Package content holds the site's informational data: company
// profile, subsidiary directory, and insights index. The data is
// seeded in code, the same way the site hard-codes it today; a CMS or
// database can replace this later without touching the handlers.
package content

import "sort"

// Leader is a member of the holding company's leadership.
type Leader struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio,omitempty"`
}

// CompanyProfile describes the holding company itself.
type CompanyProfile struct {
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Mission       string   `json:"mission"`
	Structure     string   `json:"structure"`
	InvestorEmail string   `json:"investorEmail"`
	Leaders       []Leader `json:"leaders"`
}

// Service is one offering of a subsidiary.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PortfolioItem is a highlighted piece of subsidiary work.
type PortfolioItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// TeamMember is a named person on a subsidiary team.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Subsidiary is one company in the holding's portfolio.
type Subsidiary struct {
	ID           string          `json:"id"`
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Tagline      string          `json:"tagline,omitempty"`
	Description  string          `json:"description,omitempty"`
	Website      string          `json:"website,omitempty"`
	HeroImage    string          `json:"heroImage,omitempty"`
	ContactEmail string          `json:"contactEmail,omitempty"`
	Services     []Service       `json:"services,omitempty"`
	Portfolio    []PortfolioItem `json:"portfolio,omitempty"`
	Team         []TeamMember    `json:"team,omitempty"`
}

// Insight is one entry in the insights/blog index.
type Insight struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	PublishedAt string   `json:"publishedAt"` // ISO date
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags,omitempty"`
}

var company = CompanyProfile{
	Name:          "Viggen Holdings",
	Tagline:       "Governance, capital, and strategic oversight for digital-first businesses.",
	Mission:       "We invest in and steward digital companies that prioritize product quality, strong engineering practices, and long-term sustainable growth. We partner with founders and leadership teams to provide operational support, capital, and governance to help companies reach their next phase.",
	Structure:     "Viggen Holdings operates as a lightweight holding company that provides oversight, capital allocation, and shared services to subsidiaries. Our governance model emphasizes board-level support, transparent reporting, and active partnership with executive teams.",
	InvestorEmail: "invest@viggen.example",
	Leaders: []Leader{
		{
			Name: "Amina Korir",
			Role: "Founder & CEO",
			Bio:  "Amina leads strategy and portfolio operations with a background in product engineering and startup scaling.",
		},
		{
			Name: "Martin S. Reed",
			Role: "Chair, Board of Directors",
			Bio:  "Martin brings 20+ years of experience in corporate governance and finance.",
		},
	},
}

var subsidiaries = []Subsidiary{
	{
		ID:           "yesindeed-001",
		Slug:         "yesindeed",
		Name:         "YesIndeed",
		Tagline:      "Web Development & Software Engineering",
		Description:  "YesIndeed is a web development agency and software engineering team that helps startups and enterprises build production-grade web products and APIs.",
		Website:      "/subsidiaries/yesindeed",
		HeroImage:    "/images/yesindeed-hero.jpg",
		ContactEmail: "hello@yesindeed.example",
		Services: []Service{
			{Title: "Custom web applications", Description: "React, Next.js, server rendering, and performant frontends."},
			{Title: "SaaS product development", Description: "From MVP to scaled product — architecture, CI/CD and ops."},
			{Title: "API design & backend engineering", Description: "Robust REST/GraphQL APIs, microservices, and serverless patterns."},
			{Title: "UX & product design", Description: "Product thinking, wireframes, and polished interfaces."},
		},
		Portfolio: []PortfolioItem{
			{Title: "Fintech Dashboard", Description: "Real-time analytics dashboard for a payments startup with Next.js and WebSockets.", Image: "/images/portfolio-fintech.jpg"},
			{Title: "Marketplaces Platform", Description: "Custom marketplace platform with multi-tenant architecture and scalable APIs.", Image: "/images/portfolio-marketplace.jpg"},
			{Title: "SaaS Productivity App", Description: "End-to-end product build, design system, and launch support.", Image: "/images/portfolio-saas.jpg"},
		},
		Team: []TeamMember{
			{Name: "Asha Mwangi", Role: "Head of Engineering"},
			{Name: "Liam Oduor", Role: "Product Designer"},
			{Name: "Clara Njoroge", Role: "Eng Manager"},
		},
	},
}

var insights = []Insight{
	{
		ID:          "insight-001",
		Title:       "Investing in Responsible Product Engineering",
		Slug:        "investing-in-responsible-product-engineering",
		PublishedAt: "2025-04-15",
		Excerpt:     "How we evaluate engineering-led companies and the signals we look for when investing in sustainable product teams.",
		Tags:        []string{"governance", "engineering", "strategy"},
	},
	{
		ID:          "insight-002",
		Title:       "Why Developer Experience Matters for Scale",
		Slug:        "why-developer-experience-matters-for-scale",
		PublishedAt: "2025-03-02",
		Excerpt:     "A short primer on developer experience (DX) best practices and how they impact time-to-market and operational costs.",
		Tags:        []string{"engineering", "product"},
	},
	{
		ID:          "insight-003",
		Title:       "Introducing YesIndeed: Our Software & Web Studio",
		Slug:        "introducing-yesindeed",
		PublishedAt: "2025-01-28",
		Excerpt:     "YesIndeed is our in-house web and software engineering studio focused on building production-grade products and APIs.",
		Tags:        []string{"subsidiary", "agency"},
	},
}

// Company returns the holding company profile.
func Company() CompanyProfile {
	return company
}

// Subsidiaries returns all subsidiaries in directory order.
func Subsidiaries() []Subsidiary {
	out := make([]Subsidiary, len(subsidiaries))
	copy(out, subsidiaries)
	return out
}

// SubsidiaryBySlug returns the subsidiary with the given slug.
func SubsidiaryBySlug(slug string) (Subsidiary, bool) {
	for _, s := range subsidiaries {
		if s.Slug == slug {
			return s, true
		}
	}
	return Subsidiary{}, false
}

// Insights returns all insights, newest first. ISO dates sort
// lexicographically.
func Insights() []Insight {
	out := make([]Insight, len(insights))
	copy(out, insights)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt > out[j].PublishedAt
	})
	return out
}

// InsightsByTag returns insights carrying the given tag, newest first.
func InsightsByTag(tag string) []Insight {
	var out []Insight
	for _, in := range Insights() {
		for _, t := range in.Tags {
			if t == tag {
				out = append(out, in)
				break
			}
		}
	}
	return out
}
