package catalog

// Builtin returns the default role catalog used when no file or database
// source is configured.
func Builtin() *Catalog {
	roles := []Role{
		{
			Name:        "Data Analyst",
			Skills:      []string{"python", "sql", "excel", "tableau", "powerbi", "r", "statistics", "data analysis"},
			Description: "Analyze data to help businesses make informed decisions. Work with databases, create reports, and identify trends.",
		},
		{
			Name:        "Frontend Developer",
			Skills:      []string{"javascript", "react", "vue", "angular", "html", "css", "typescript", "frontend"},
			Description: "Build user interfaces and interactive web applications. Focus on creating responsive and accessible user experiences.",
		},
		{
			Name:        "Backend Developer",
			Skills:      []string{"python", "java", "nodejs", "express", "django", "flask", "sql", "mongodb", "backend"},
			Description: "Develop server-side logic and APIs. Handle database operations and business logic implementation.",
		},
		{
			Name:        "Full Stack Developer",
			Skills:      []string{"javascript", "react", "vue", "angular", "nodejs", "express", "python", "django", "sql", "mongodb"},
			Description: "Work on both frontend and backend development. End-to-end application development and deployment.",
		},
		{
			Name:        "DevOps Engineer",
			Skills:      []string{"docker", "kubernetes", "aws", "azure", "jenkins", "git", "linux", "ci/cd"},
			Description: "Manage infrastructure, deployment pipelines, and system reliability. Bridge development and operations.",
		},
		{
			Name:        "Mobile Developer",
			Skills:      []string{"react native", "flutter", "swift", "kotlin", "android", "ios", "mobile"},
			Description: "Create mobile applications for iOS and Android platforms. Focus on mobile-specific user experiences.",
		},
		{
			Name:        "Data Scientist",
			Skills:      []string{"python", "r", "machine learning", "deep learning", "tensorflow", "pytorch", "statistics"},
			Description: "Apply statistical analysis and machine learning to solve complex business problems.",
		},
		{
			Name:        "UI/UX Designer",
			Skills:      []string{"figma", "adobe xd", "sketch", "photoshop", "illustrator", "design", "prototyping"},
			Description: "Design user interfaces and user experiences. Create wireframes, prototypes, and design systems.",
		},
		{
			Name:        "Product Manager",
			Skills:      []string{"agile", "scrum", "product management", "user research", "analytics", "strategy"},
			Description: "Lead product development from conception to launch. Coordinate between stakeholders and development teams.",
		},
		{
			Name:        "QA Engineer",
			Skills:      []string{"selenium", "cypress", "jest", "testing", "quality assurance", "automation"},
			Description: "Ensure software quality through testing and quality assurance processes.",
		},
		{
			Name:        "Vue Developer",
			Skills:      []string{"vue", "javascript", "vuex", "pinia", "composition api", "options api", "frontend"},
			Description: "Specialize in Vue.js development. Build modern, reactive web applications using Vue ecosystem.",
		},
		{
			Name:        "Software Engineer",
			Skills:      []string{"python", "java", "javascript", "c++", "c#", "algorithms", "data structures", "software development"},
			Description: "Design, develop, and maintain software applications. Solve complex technical problems.",
		},
	}

	c, err := New(roles)
	if err != nil {
		// The builtin data is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}
