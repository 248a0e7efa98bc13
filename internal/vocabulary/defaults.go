package vocabulary

// Default returns the built-in analysis tables. Callers get a fresh copy and
// may mutate it freely.
func Default() *Vocabulary {
	return &Vocabulary{
		AmbiguousTerms:        append([]string(nil), defaultAmbiguousTerms...),
		Suggestions:           copyMap(defaultSuggestions),
		Questions:             copyMap(defaultQuestions),
		FunctionalKeywords:    append([]string(nil), defaultFunctionalKeywords...),
		NonFunctionalKeywords: append([]string(nil), defaultNonFunctionalKeywords...),
	}
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Terms commonly flagged as insufficiently measurable in requirements.
var defaultAmbiguousTerms = []string{
	"fast", "quick", "rapid", "slow",
	"user-friendly", "easy", "simple", "intuitive",
	"efficient", "effective", "optimal", "better", "improved",
	"secure", "safe", "protected",
	"reliable", "robust", "stable",
	"scalable", "flexible", "adaptable",
	"adequate", "sufficient", "appropriate",
	"as soon as possible", "asap", "timely",
	"recent", "modern", "latest",
	"high quality", "good", "bad", "poor",
	"large", "small", "big", "tiny",
	"many", "few", "several", "various",
	"etc", "and so on", "and so forth",
	"reasonable", "acceptable", "suitable",
	"maximum", "minimum", "approximately",
	"normal", "usual", "typical",
	"clear", "obvious", "evident",
}

var defaultSuggestions = map[string]string{
	"fast":                "within 2 seconds",
	"quick":               "within 3 seconds",
	"slow":                "more than 5 seconds",
	"user-friendly":       "with clear navigation, tooltips, and help documentation",
	"easy":                "requiring no more than 3 clicks",
	"simple":              "with a clean interface and minimal steps",
	"intuitive":           "following standard UI patterns (e.g., Material Design)",
	"efficient":           "using less than 100MB of memory",
	"effective":           "achieving 95% accuracy",
	"optimal":             "meeting performance benchmarks of <2s response time",
	"better":              "10% faster than the previous version",
	"improved":            "with 20% reduced error rate",
	"secure":              "using AES-256 encryption and OAuth 2.0 authentication",
	"safe":                "with SSL/TLS encryption and password hashing (bcrypt)",
	"protected":           "with role-based access control (RBAC)",
	"reliable":            "with 99.9% uptime",
	"robust":              "handling 1000 concurrent users",
	"stable":              "with less than 0.1% crash rate",
	"scalable":            "supporting up to 10,000 users",
	"flexible":            "with configurable settings and plugin support",
	"adaptable":           "supporting multiple platforms (Web, iOS, Android)",
	"adequate":            "meeting ISO 25010 quality standards",
	"sufficient":          "providing 99.5% test coverage",
	"appropriate":         "following WCAG 2.1 AA accessibility guidelines",
	"as soon as possible": "within 24 hours",
	"asap":                "within 24 hours",
	"timely":              "within the agreed SLA of 48 hours",
	"recent":              "from the last 30 days",
	"modern":              "supporting current browser versions (Chrome 90+, Firefox 88+)",
	"latest":              "the most recent stable version",
	"high quality":        "with less than 5 defects per 1000 lines of code",
	"good":                "meeting acceptance criteria with 90% user satisfaction",
	"bad":                 "with error rate exceeding 5%",
	"poor":                "below 70% performance benchmark",
	"large":               "greater than 1GB",
	"small":               "less than 50MB",
	"big":                 "exceeding 500MB",
	"tiny":                "less than 10MB",
	"many":                "more than 100 items",
	"few":                 "fewer than 10 items",
	"several":             "between 5 and 15 items",
	"various":             "supporting at least 5 different formats",
	"etc":                 "(please specify all items explicitly)",
	"and so on":           "(please list all requirements)",
	"and so forth":        "(please enumerate all conditions)",
	"reasonable":          "within the budget of $50,000 and 6-month timeline",
	"acceptable":          "meeting 85% of user acceptance criteria",
	"suitable":            "compliant with industry standards (IEEE, ISO)",
	"maximum":             "not exceeding [specify exact limit]",
	"minimum":             "at least [specify exact threshold]",
	"approximately":       "[specify exact value ± acceptable range]",
	"normal":              "under standard operating conditions (20-25°C, <80% humidity)",
	"usual":               "following typical usage patterns",
	"typical":             "representing 80% of use cases",
	"clear":               "with explicit error messages and status indicators",
	"obvious":             "following conventional design patterns",
	"evident":             "with visible feedback for all user actions",
}

var defaultQuestions = map[string]string{
	"fast":     "How fast should it be? (e.g., response time in seconds)",
	"quick":    "How quick should the response be? (e.g., within X seconds)",
	"slow":     "What is the acceptable maximum time? (e.g., X seconds)",
	"quickly":  "How quickly should this happen? (e.g., within X seconds)",
	"rapid":    "How rapid should the response be? (e.g., X milliseconds)",
	"user-friendly": "What makes it user-friendly? (e.g., number of clicks, help features, UI standards)",
	"easy":      "What defines 'easy'? (e.g., max number of steps, training time required)",
	"simple":    "What makes it simple? (e.g., minimal UI elements, single-page design)",
	"intuitive": "What UI standards should it follow? (e.g., Material Design, iOS HIG)",
	"clear":     "How should clarity be ensured? (e.g., tooltips, error messages, documentation)",
	"secure":    "What security measures are required? (e.g., encryption type, authentication method)",
	"safe":      "What safety features are needed? (e.g., SSL/TLS, password hashing method)",
	"protected": "How should data be protected? (e.g., access control method, encryption level)",
	"encrypted": "What encryption standard? (e.g., AES-256, RSA-2048)",
	"reliable":  "What reliability level is required? (e.g., uptime percentage, error rate)",
	"robust":    "What load should it handle? (e.g., concurrent users, requests per second)",
	"stable":    "What stability metrics? (e.g., crash rate, error frequency)",
	"scalable":  "What scale is needed? (e.g., number of users, data volume)",
	"flexible":  "What flexibility features? (e.g., configurable settings, plugin support)",
	"adaptable": "What platforms should it support? (e.g., Web, iOS, Android)",
	"good":         "What defines 'good' quality? (e.g., defect rate, user satisfaction %)",
	"better":       "How much better? (e.g., X% faster, Y% fewer errors)",
	"improved":     "What improvement metrics? (e.g., X% performance increase)",
	"high quality": "What quality standards? (e.g., ISO, defect rate threshold)",
	"excellent":    "What are the excellence criteria? (e.g., benchmark scores, ratings)",
	"large": "How large? (e.g., file size in MB/GB, data volume)",
	"small": "How small? (e.g., maximum file size, memory footprint)",
	"big":   "How big? (e.g., storage capacity, screen size)",
	"many":  "How many? (e.g., exact number or range)",
	"few":   "How few? (e.g., maximum count)",
	"as soon as possible": "What's the deadline? (e.g., within 24 hours, X business days)",
	"asap":                "What's the specific timeframe? (e.g., within X hours)",
	"timely":              "What's the time requirement? (e.g., within X hours, same-day)",
	"recent":              "How recent? (e.g., last X days, current week)",
	"adequate":    "What standards should be met? (e.g., industry standard, compliance level)",
	"sufficient":  "What level is sufficient? (e.g., test coverage %, resources needed)",
	"appropriate": "What makes it appropriate? (e.g., compliance standards, guidelines)",
	"reasonable":  "What are the constraints? (e.g., budget limit, timeline)",
	"efficient":   "What efficiency metrics? (e.g., resource usage, processing time)",
	"effective":   "What effectiveness criteria? (e.g., accuracy %, success rate)",
	"optimal":     "What optimization targets? (e.g., latency, throughput)",
	"performance": "What performance benchmarks? (e.g., response time, throughput)",
}

// Keywords indicating a statement describes something the system does.
var defaultFunctionalKeywords = []string{
	"login", "register", "sign up", "sign in", "logout",
	"create", "add", "insert", "delete", "remove",
	"update", "edit", "modify", "change",
	"view", "display", "show", "list", "browse",
	"search", "find", "filter", "sort",
	"upload", "download", "export", "import",
	"send", "receive", "submit", "post",
	"calculate", "compute", "process", "generate",
	"validate", "verify", "check", "confirm",
	"approve", "reject", "cancel",
	"notify", "alert", "remind",
	"print", "save", "store",
	"share", "collaborate",

	"dashboard", "report", "form", "button",
	"menu", "navigation", "link",
	"payment", "checkout", "cart",
	"profile", "account", "settings",
	"notification", "message", "email",
	"database", "record", "entry",
}

// Keywords indicating a statement describes a quality attribute.
var defaultNonFunctionalKeywords = []string{
	"performance", "speed", "response time", "latency",
	"throughput", "load time", "processing time",
	"fast", "quick", "slow", "efficient",

	"security", "secure", "encryption", "authentication",
	"authorization", "access control", "password",
	"privacy", "confidential", "protected",
	"ssl", "tls", "https", "oauth",

	"reliability", "reliable", "uptime", "availability",
	"fault tolerance", "backup", "recovery",
	"robust", "stable", "consistent",

	"scalability", "scalable", "concurrent users",
	"load balancing", "horizontal scaling",

	"usability", "user-friendly", "intuitive", "easy",
	"accessible", "accessibility", "wcag",
	"user experience", "ux", "ui",

	"maintainability", "maintainable", "modular",
	"extensible", "flexible", "reusable",
	"documentation", "code quality",

	"portability", "portable", "cross-platform",
	"compatibility", "compatible", "browser support",

	"compliance", "compliant", "regulation", "standard",
	"gdpr", "hipaa", "iso", "ieee",
}
