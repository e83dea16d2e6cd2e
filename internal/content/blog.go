package content

// AllCategories selects every post.
const AllCategories = "All"

type Post struct {
	ID       string
	Title    string
	Slug     string
	Excerpt  string
	Author   string
	Date     string
	ReadTime string
	Category string
	Tags     []string
}

var Posts = []Post{
	{
		ID: "1", Title: "Building Modern Web Apps with Next.js 15", Slug: "building-modern-web-apps-nextjs-15",
		Excerpt: "Explore the latest features in Next.js 15 and how they can transform your web development workflow.",
		Author:  "ATTMOC Team", Date: "2026-02-01", ReadTime: "5 min read", Category: "Web Development",
		Tags: []string{"Next.js", "React", "Web Development"},
	},
	{
		ID: "2", Title: "AI Integration in Modern Applications", Slug: "ai-integration-modern-applications",
		Excerpt: "Learn how to integrate AI capabilities into your applications using OpenAI and other modern AI services.",
		Author:  "ATTMOC Team", Date: "2026-01-28", ReadTime: "7 min read", Category: "AI & ML",
		Tags: []string{"AI", "OpenAI", "ChatGPT", "Integration"},
	},
	{
		ID: "3", Title: "Dark Mode Implementation Best Practices", Slug: "dark-mode-best-practices",
		Excerpt: "A comprehensive guide to implementing dark mode in your applications with accessibility in mind.",
		Author:  "ATTMOC Team", Date: "2026-01-25", ReadTime: "4 min read", Category: "UI/UX",
		Tags: []string{"Dark Mode", "Accessibility", "UI/UX"},
	},
	{
		ID: "4", Title: "Performance Optimization for React Applications", Slug: "react-performance-optimization",
		Excerpt: "Proven techniques to improve React application performance and Core Web Vitals scores.",
		Author:  "ATTMOC Team", Date: "2026-01-20", ReadTime: "6 min read", Category: "Performance",
		Tags: []string{"React", "Performance", "Optimization"},
	},
}

// Categories lists the blog filter tabs in display order. "Mobile" has
// no posts yet.
var Categories = []string{AllCategories, "Web Development", "AI & ML", "UI/UX", "Performance", "Mobile"}

// FilterPosts returns the posts in category, in publication order.
// AllCategories and the empty string return every post.
func FilterPosts(category string) []Post {
	if category == "" || category == AllCategories {
		return append([]Post(nil), Posts...)
	}
	var out []Post
	for _, p := range Posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
