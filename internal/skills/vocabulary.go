// Package skills holds the read-only skill vocabulary: canonical technical
// and soft skill terms plus an alias map resolving surface forms to their
// canonical names. The maps are initialized once and never mutated, so they
// are safe to share across parallel workers.
package skills

import "strings"

// technicalSkills is the closed vocabulary of canonical technical skill
// terms, all lowercase.
var technicalSkills = map[string]struct{}{
	// Programming languages
	"python": {}, "java": {}, "javascript": {}, "typescript": {}, "c++": {},
	"c#": {}, "ruby": {}, "go": {}, "rust": {}, "php": {}, "swift": {},
	"kotlin": {}, "scala": {}, "r": {}, "matlab": {}, "perl": {}, "shell": {},
	"bash": {},

	// Web technologies
	"html": {}, "css": {}, "react": {}, "angular": {}, "vue": {}, "nodejs": {},
	"express": {}, "django": {}, "flask": {}, "fastapi": {}, "spring": {},
	"asp.net": {}, "jquery": {}, "bootstrap": {}, "tailwind": {},

	// Databases
	"sql": {}, "mysql": {}, "postgresql": {}, "mongodb": {}, "redis": {},
	"cassandra": {}, "dynamodb": {}, "oracle": {}, "sqlite": {},
	"elasticsearch": {}, "neo4j": {},

	// ML / AI
	"machine learning": {}, "deep learning": {}, "tensorflow": {},
	"pytorch": {}, "keras": {}, "scikit-learn": {}, "pandas": {}, "numpy": {},
	"nlp": {}, "computer vision": {}, "neural networks": {},
	"transformers": {}, "bert": {}, "gpt": {}, "llm": {},
	"reinforcement learning": {}, "xgboost": {}, "lightgbm": {},

	// Cloud & DevOps
	"aws": {}, "azure": {}, "gcp": {}, "docker": {}, "kubernetes": {},
	"jenkins": {}, "gitlab": {}, "github actions": {}, "terraform": {},
	"ansible": {}, "ci/cd": {}, "devops": {}, "linux": {}, "unix": {},

	// Data science
	"data analysis": {}, "data visualization": {}, "tableau": {},
	"power bi": {}, "matplotlib": {}, "seaborn": {}, "plotly": {},
	"statistical analysis": {}, "hypothesis testing": {}, "a/b testing": {},

	// Tools & frameworks
	"git": {}, "jira": {}, "confluence": {}, "postman": {}, "swagger": {},
	"graphql": {}, "rest api": {}, "microservices": {}, "agile": {},
	"scrum": {}, "kafka": {}, "rabbitmq": {}, "spark": {}, "hadoop": {},
}

// softSkills is the closed vocabulary of canonical soft skill terms.
var softSkills = map[string]struct{}{
	"leadership": {}, "communication": {}, "teamwork": {},
	"problem solving": {}, "analytical": {}, "critical thinking": {},
	"creativity": {}, "adaptability": {}, "time management": {},
	"project management": {}, "collaboration": {}, "presentation": {},
	"negotiation": {},
}

// aliases maps surface forms to canonical skill names.
var aliases = map[string]string{
	"js":      "javascript",
	"ts":      "typescript",
	"k8s":     "kubernetes",
	"ml":      "machine learning",
	"dl":      "deep learning",
	"cv":      "computer vision",
	"tf":      "tensorflow",
	"sklearn": "scikit-learn",
	"np":      "numpy",
	"pd":      "pandas",
}

// IsTechnical reports whether term is a canonical technical skill.
func IsTechnical(term string) bool {
	_, ok := technicalSkills[strings.ToLower(term)]
	return ok
}

// IsSoft reports whether term is a canonical soft skill.
func IsSoft(term string) bool {
	_, ok := softSkills[strings.ToLower(term)]
	return ok
}

// Canonical resolves a surface form to its canonical skill name. It returns
// the canonical name and true when the term is in the vocabulary (directly
// or via an alias), or "" and false for unknown terms.
func Canonical(term string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return "", false
	}
	if canonical, ok := aliases[lower]; ok {
		return canonical, true
	}
	if IsTechnical(lower) || IsSoft(lower) {
		return lower, true
	}
	return "", false
}

// Technical returns all canonical technical skill terms. The returned map
// must not be modified.
func Technical() map[string]struct{} { return technicalSkills }

// Soft returns all canonical soft skill terms. The returned map must not
// be modified.
func Soft() map[string]struct{} { return softSkills }

// Aliases returns the surface-form alias map. The returned map must not
// be modified.
func Aliases() map[string]string { return aliases }
