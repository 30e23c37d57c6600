// Package vocab provides the categorized skill vocabulary used by the
// skills extractor. The taxonomy is configuration: callers may load their
// own table from JSON, validated against schemas/vocabulary.schema.json.
package vocab

import (
	"encoding/json"
	"os"
	"strings"
)

// Category identifies one of the five skill categories.
type Category string

// Skill categories, matching the profile's skill set fields.
const (
	CategoryLanguages  Category = "programming_languages"
	CategoryFrameworks Category = "frameworks_libraries"
	CategoryCloud      Category = "cloud_platforms"
	CategoryDatabases  Category = "databases"
	CategoryDevTools   Category = "dev_tools"
)

// Categories lists all skill categories in their display order.
func Categories() []Category {
	return []Category{
		CategoryLanguages,
		CategoryFrameworks,
		CategoryCloud,
		CategoryDatabases,
		CategoryDevTools,
	}
}

// Term is one vocabulary entry: a canonical display name plus the lowercase
// variants that should collapse onto it ("react.js" and "reactjs" → "React").
type Term struct {
	Canonical string   `json:"canonical"`
	Aliases   []string `json:"aliases,omitempty"`
}

// Vocabulary maps each category to its terms and supports canonical lookup.
type Vocabulary struct {
	Terms map[Category][]Term `json:"terms"`

	// lookup maps lowercase alias -> (category, canonical). Built eagerly
	// in New and never mutated afterwards, so a shared Vocabulary is safe
	// for concurrent extraction calls.
	lookup map[string]match
}

type match struct {
	category  Category
	canonical string
}

// New builds a vocabulary from a term table and indexes it for lookup.
func New(terms map[Category][]Term) *Vocabulary {
	v := &Vocabulary{Terms: terms}
	v.buildLookup()
	return v
}

// Load reads a vocabulary table from a JSON file. The file should be
// validated against the vocabulary schema first (see ValidateFile).
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read vocabulary file", Cause: err}
	}

	var terms map[Category][]Term
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, &LoadError{Message: "failed to parse vocabulary JSON", Cause: err}
	}

	return New(terms), nil
}

// Canonical resolves a lowercase token or phrase to its category and
// canonical name. The second return is false when the word is not in the
// vocabulary.
func (v *Vocabulary) Canonical(word string) (Category, string, bool) {
	m, ok := v.lookup[strings.ToLower(strings.TrimSpace(word))]
	if !ok {
		return "", "", false
	}
	return m.category, m.canonical, true
}

// MultiWordAliases returns the aliases containing spaces, which cannot be
// found in a single-token stream and must be matched against whole lines.
func (v *Vocabulary) MultiWordAliases() map[string]string {
	out := make(map[string]string)
	for alias, m := range v.lookup {
		if strings.Contains(alias, " ") {
			out[alias] = m.canonical
		}
	}
	return out
}

func (v *Vocabulary) buildLookup() {
	v.lookup = make(map[string]match)
	for category, terms := range v.Terms {
		for _, term := range terms {
			v.lookup[strings.ToLower(term.Canonical)] = match{category, term.Canonical}
			for _, alias := range term.Aliases {
				v.lookup[strings.ToLower(alias)] = match{category, term.Canonical}
			}
		}
	}
}

// Default returns the built-in vocabulary table.
func Default() *Vocabulary {
	return New(map[Category][]Term{
		CategoryLanguages: {
			{Canonical: "Go", Aliases: []string{"golang", "go lang"}},
			{Canonical: "Python"},
			{Canonical: "JavaScript", Aliases: []string{"js"}},
			{Canonical: "TypeScript", Aliases: []string{"ts"}},
			{Canonical: "Java"},
			{Canonical: "C++", Aliases: []string{"cpp"}},
			{Canonical: "C#", Aliases: []string{"csharp"}},
			{Canonical: "Ruby"},
			{Canonical: "Rust"},
			{Canonical: "PHP"},
			{Canonical: "Kotlin"},
			{Canonical: "Swift"},
			{Canonical: "Scala"},
			{Canonical: "SQL"},
		},
		CategoryFrameworks: {
			{Canonical: "React", Aliases: []string{"react.js", "reactjs"}},
			{Canonical: "Vue", Aliases: []string{"vue.js", "vuejs"}},
			{Canonical: "Angular", Aliases: []string{"angularjs"}},
			{Canonical: "Node.js", Aliases: []string{"nodejs", "node"}},
			{Canonical: "Django"},
			{Canonical: "Flask"},
			{Canonical: "Rails", Aliases: []string{"ruby on rails"}},
			{Canonical: "Spring", Aliases: []string{"spring boot"}},
			{Canonical: "Express", Aliases: []string{"express.js", "expressjs"}},
			{Canonical: "Next.js", Aliases: []string{"nextjs"}},
			{Canonical: "FastAPI"},
			{Canonical: "gRPC"},
		},
		CategoryCloud: {
			{Canonical: "AWS", Aliases: []string{"amazon web services"}},
			{Canonical: "GCP", Aliases: []string{"google cloud", "google cloud platform"}},
			{Canonical: "Azure"},
			{Canonical: "Kubernetes", Aliases: []string{"k8s"}},
			{Canonical: "Docker"},
			{Canonical: "Terraform"},
			{Canonical: "Heroku"},
			{Canonical: "Lambda", Aliases: []string{"aws lambda"}},
		},
		CategoryDatabases: {
			{Canonical: "PostgreSQL", Aliases: []string{"postgres"}},
			{Canonical: "MySQL"},
			{Canonical: "MongoDB", Aliases: []string{"mongo"}},
			{Canonical: "Redis"},
			{Canonical: "SQLite"},
			{Canonical: "Elasticsearch"},
			{Canonical: "DynamoDB"},
			{Canonical: "Cassandra"},
		},
		CategoryDevTools: {
			{Canonical: "Git"},
			{Canonical: "GitHub", Aliases: []string{"github actions"}},
			{Canonical: "GitLab"},
			{Canonical: "Jenkins"},
			{Canonical: "Jira"},
			{Canonical: "CircleCI"},
			{Canonical: "Bash"},
			{Canonical: "Linux"},
			{Canonical: "Grafana"},
			{Canonical: "Prometheus"},
		},
	})
}
