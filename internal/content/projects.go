package content

import "github.com/pacman-cli/portfolio/internal/models"

const takaTrackArchitecture = "```mermaid\n" +
	"flowchart TD\n" +
	"    Client[\"Next.js Frontend\"]\n" +
	"    API[\"Spring Boot API\"]\n" +
	"    DB[\"MySQL Database\"]\n" +
	"    Auth[\"JWT Authentication\"]\n" +
	"    Docker[\"Docker Compose\"]\n\n" +
	"    Client -->|\"REST API\"| API\n" +
	"    API --> Auth\n" +
	"    API --> DB\n" +
	"    Docker -.->|\"orchestrates\"| Client\n" +
	"    Docker -.->|\"orchestrates\"| API\n" +
	"    Docker -.->|\"orchestrates\"| DB\n" +
	"```\n"

// Projects returns every portfolio project. Callers receive their own copy.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

var projects = []models.Project{
	{
		Slug:            "takatrack",
		Name:            "TakaTrack",
		Description:     "A comprehensive personal finance management platform with real-time visualizations, expense tracking, and savings goal management.",
		LongDescription: "TakaTrack is a full-stack personal finance application designed to help users take control of their financial life. It features real-time expense tracking, interactive charts, savings goal management, and category-based analytics, all backed by a robust Spring Boot API and MySQL database.",
		TechStack:       []string{"Next.js", "Spring Boot", "MySQL", "Docker"},
		GithubURL:       "https://github.com/pacman-cli/expense-tracker",
		DemoURL:         "https://takatrack.puspo.online",
		Category:        models.ProjectCategoryFullstack,
		Featured:        true,
		ProblemStatement: "Managing personal finances across multiple categories is overwhelming without a centralized tool. " +
			"Most free budgeting apps lack real-time insights and goal tracking, forcing users to rely on spreadsheets.",
		Architecture: takaTrackArchitecture,
		Challenges: []string{
			"Implementing real-time chart updates without compromising page performance",
			"Designing a flexible category system that supports custom user categories",
			"Handling concurrent expense submissions from multiple devices",
		},
		Solutions: []string{
			"Used React Query with optimistic updates for instant UI feedback",
			"Built a hierarchical category model with parent-child relationships in MySQL",
			"Implemented database-level locking with Spring Boot @Transactional for data consistency",
		},
		Results: []string{
			"Handles 1000+ expense entries per user with sub-200ms API response times",
			"Deployed on cloud with Docker Compose for easy horizontal scaling",
			"Interactive dashboards with Chart.js render in under 100ms",
		},
		RelatedBlogSlugs: []string{"microservices-spring-boot-architecture"},
	},
	{
		Slug:            "staymate",
		Name:            "StayMate",
		Description:     "Full-stack rental property marketplace with secure authentication, real-time messaging, and comprehensive listing management.",
		LongDescription: "StayMate is a production-grade rental property marketplace that connects landlords with tenants. It features property listing management, search with filters, user authentication via JWT, real-time messaging, and image uploads, built with a clean separation between the Next.js frontend and Spring Boot backend.",
		TechStack:       []string{"Next.js", "Spring Boot", "MySQL", "Docker"},
		GithubURL:       "https://github.com/pacman-cli/staymate",
		DemoURL:         "https://staymate-demo.puspo.online",
		Category:        models.ProjectCategoryFullstack,
		Featured:        true,
		ProblemStatement: "Finding rental properties in local markets often relies on fragmented social media posts and phone calls, " +
			"lacking a unified search and communication platform.",
		Challenges: []string{
			"Building a secure multi-role authentication system (landlord vs tenant)",
			"Implementing efficient property search with multiple filter combinations",
			"Handling image uploads and storage at scale",
		},
		Solutions: []string{
			"Designed role-based JWT auth with Spring Security and refresh token rotation",
			"Built dynamic query construction using JPA Specifications for flexible filtering",
			"Implemented cloud-based image storage with pre-signed URLs for secure uploads",
		},
		Results: []string{
			"Supports 500+ property listings with paginated search in under 300ms",
			"Zero authentication vulnerabilities in security testing",
			"Deployed via Docker Compose with separate services for frontend, backend, and database",
		},
		RelatedBlogSlugs: []string{"spring-security-architecture-linkedin"},
	},
	{
		Slug:        "portfolio",
		Name:        "Portfolio",
		Description: "Developer portfolio featuring a live GitHub activity widget, a markdown blog with callouts, and server-rendered pages.",
		TechStack:   []string{"Go", "Gin", "HTMX"},
		GithubURL:   "https://github.com/pacman-cli/MyPortfolio",
		DemoURL:     "https://puspo.online",
		Category:    models.ProjectCategoryFrontend,
		ProblemStatement: "Developer portfolios need to balance visual appeal with performance and SEO. " +
			"Most template-based portfolios sacrifice either design quality or Core Web Vitals scores.",
		Challenges: []string{
			"Keeping the page fast while pulling live data from third-party APIs",
			"Rendering long-form technical posts with code, tables and callouts",
			"Degrading gracefully when GitHub or the contributions API is unavailable",
		},
		Solutions: []string{
			"Loaded the GitHub activity widget as a lazy HTML fragment",
			"Built a small markdown pipeline with syntax highlighting and callout blocks",
			"Treated every third-party fetch as best effort with a static fallback",
		},
		Results: []string{
			"95+ Lighthouse performance score on mobile",
			"Sub-2 second LCP on 3G connections",
			"Fully responsive across all breakpoints",
		},
	},
	{
		Slug:        "e-commerce",
		Name:        "E-Commerce",
		Description: "A comprehensive e-commerce platform with product management, shopping cart functionality, and secure checkout processes.",
		TechStack:   []string{"Next.js", "Spring Boot", "MySQL", "Docker"},
		GithubURL:   "https://github.com/pacman-cli/e-commerce",
		DemoURL:     "https://ecommerce.puspo.online/",
		Category:    models.ProjectCategoryFullstack,
		ProblemStatement: "Building a production-ready e-commerce platform requires handling complex state management, " +
			"inventory tracking, and secure payment processing.",
		Challenges: []string{
			"Managing shopping cart state across sessions and devices",
			"Preventing race conditions during concurrent inventory updates",
			"Implementing secure checkout with payment validation",
		},
		Solutions: []string{
			"Used server-side session management with Redis-backed caching",
			"Applied optimistic locking in JPA for inventory concurrency control",
			"Built a multi-step checkout flow with server-side validation at each step",
		},
		Results: []string{
			"Full CRUD product management with image galleries",
			"Cart persistence across browser sessions",
			"Containerized deployment with Docker Compose",
		},
	},
	{
		Slug:        "java-learning",
		Name:        "Java Learning",
		Description: "Comprehensive repository of Java learning projects covering core concepts, algorithms, and advanced OOP patterns.",
		TechStack:   []string{"Java", "Algorithms", "OOP"},
		GithubURL:   "https://github.com/pacman-cli/Java-Learning",
		Category:    models.ProjectCategoryBackend,
	},
	{
		Slug:        "business-analytics",
		Name:        "Business Analytics Dashboard",
		Description: "Data-driven analytics dashboard for business insights with interactive visualizations and reporting capabilities.",
		TechStack:   []string{"Java", "Spring Boot", "Analytics"},
		GithubURL:   "https://github.com/pacman-cli/Java-Learning/tree/main/server/businessAnalytics",
		Category:    models.ProjectCategoryBackend,
	},
}
