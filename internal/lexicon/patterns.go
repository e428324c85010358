package lexicon

// defaultPatternExprs is the built-in priority pattern list, ordered
// most important first. Default() assigns weight len-index so the first
// pattern contributes the most per match.
var defaultPatternExprs = []string{
	// FinTech
	`\b(fintech|financial technology|payments?|trading|defi|blockchain|cryptocurrency|crypto)\b`,
	`\b(compliance|kyc|aml|regulatory|custody|oracles?|yield)\b`,
	`\b(tvl|wrapped tokens?|proof of reserve|evm|layer 2|smart contracts?)\b`,
	`\b(ethereum|polygon|bitcoin|web3|metamask|chainlink)\b`,

	// Technical leadership
	`\b(engineering manager|tech lead|architect|cto|director)\b`,
	`\b(team lead|leadership|management|mentoring|scaling)\b`,

	// Programming languages and frameworks
	`\b(python|javascript|typescript|react|node\.?js|django|flask)\b`,
	`\b(c#|\.net|asp\.net|java|spring|golang|rust|solidity)\b`,

	// Infrastructure and DevOps
	`\b(aws|azure|gcp|docker|kubernetes|microservices)\b`,
	`\b(api|rest|restful|graphql|grpc|websocket)\b`,
	`\b(ci/cd|devops|jenkins|github actions|gitlab)\b`,

	// Databases and caching
	`\b(postgresql|mysql|mongodb|redis|elasticsearch|influxdb)\b`,
	`\b(sql server|oracle|cassandra|dynamodb|snowflake)\b`,

	// Security and compliance
	`\b(security|oauth|jwt|encryption|authentication|authorization)\b`,
	`\b(pci dss|sox|gdpr|ccpa|hipaa|soc 2)\b`,

	// Methodologies
	`\b(agile|scrum|kanban|lean|safe|xp|tdd|bdd)\b`,

	// Business impact and metrics
	`\b(revenue|cost reduction|efficiency|performance|scale|growth)\b`,
	`\b(million|billion|percent|\$\d+[mk]?\b|\d+\+?\s*years?)\b`,
	`\b(uptime|sla|latency|throughput|scalability)\b`,
}

var defaultStopWords = []string{
	"the", "and", "with", "for", "you", "will", "are", "have", "our", "this", "that", "from",
	"they", "been", "would", "there", "their", "what", "said", "each", "which", "were", "than",
	"but", "not", "all", "any", "can", "had", "was", "one", "your", "how", "use", "word", "may",
	"she", "oil", "its", "now", "him", "could", "did", "get", "has", "his", "her", "let", "put",
	"too", "also", "back", "call", "came", "come", "just", "like", "long", "look", "made", "make",
	"many", "over", "such", "take", "very", "well", "work", "who", "where", "when", "why", "some",
	"about", "into", "through", "during", "before", "after", "above", "below", "between", "among",
	"able", "team", "role", "position", "company", "business", "opportunity", "candidate",
}

var defaultVariations = map[string][]string{
	"javascript": {"js", "ecmascript", "node.js", "nodejs"},
	"typescript": {"ts"},
	"c#":         {"csharp", "c-sharp", "dotnet", ".net"},
	".net core":  {"dotnet core", "asp.net core", "aspnet core"},
	"postgresql": {"postgres", "psql"},
	"react":      {"reactjs", "react.js"},
	"aws":        {"amazon web services", "amazon cloud"},
	"ci/cd":      {"continuous integration", "continuous deployment", "cicd"},
	"api":        {"rest api", "restful api", "web api"},
	"blockchain": {"distributed ledger", "crypto", "web3"},
	"defi":       {"decentralized finance", "decentralised finance"},
	"fintech":    {"financial technology", "fin-tech"},
}

var defaultHighPriorityTerms = []string{
	"fintech", "blockchain", "defi", "python", "javascript", "react",
	"aws", "leadership", "management", "api", "postgresql", "docker",
	"microservices", "payments", "compliance", "security", "agile",
	"scrum", "ethereum", "trading", "yield", "tvl", "custody",
}
