package skills

// Category group memberships. Skills absent from every group fall into
// "tools" when they are in the technical vocabulary, otherwise "other".
var (
	programmingGroup = map[string]struct{}{
		"python": {}, "java": {}, "javascript": {}, "c++": {}, "c#": {},
		"go": {}, "rust": {}, "ruby": {},
	}
	frameworksGroup = map[string]struct{}{
		"react": {}, "angular": {}, "vue": {}, "django": {}, "flask": {},
		"spring": {}, "express": {},
	}
	databasesGroup = map[string]struct{}{
		"sql": {}, "mysql": {}, "postgresql": {}, "mongodb": {}, "redis": {},
		"cassandra": {},
	}
	cloudGroup = map[string]struct{}{
		"aws": {}, "azure": {}, "gcp": {}, "docker": {}, "kubernetes": {},
	}
	mlGroup = map[string]struct{}{
		"machine learning": {}, "deep learning": {}, "tensorflow": {},
		"pytorch": {}, "nlp": {},
	}
)

// Categorize groups canonical skills into named categories. Empty
// categories are omitted; every input skill lands in exactly one group.
func Categorize(skillList []string) map[string][]string {
	categories := make(map[string][]string)

	add := func(category, skill string) {
		categories[category] = append(categories[category], skill)
	}

	for _, skill := range skillList {
		switch {
		case contains(programmingGroup, skill):
			add("programming", skill)
		case contains(frameworksGroup, skill):
			add("frameworks", skill)
		case contains(databasesGroup, skill):
			add("databases", skill)
		case contains(cloudGroup, skill):
			add("cloud", skill)
		case contains(mlGroup, skill):
			add("ml_ai", skill)
		case IsTechnical(skill):
			add("tools", skill)
		default:
			add("other", skill)
		}
	}

	return categories
}

func contains(set map[string]struct{}, term string) bool {
	_, ok := set[term]
	return ok
}
