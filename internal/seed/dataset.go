// Package seed holds the reference curriculum dataset and the routine that
// resets the catalog to it. The dataset is authored data, not code: it is
// embedded as YAML and validated against a JSON schema at load time.
package seed

import "github.com/aulamath/aulamath/internal/catalog"

// Dataset is the full reference content tree: grades with nested topics,
// modules, and content units. Identifiers are assigned by the store during
// seeding, never authored.
type Dataset struct {
	Grades []GradeSeed `yaml:"grades" json:"grades"`
}

// GradeSeed is one grade plus its topic subtree.
type GradeSeed struct {
	GradeNumber int         `yaml:"grade_number" json:"grade_number"`
	GradeName   string      `yaml:"grade_name" json:"grade_name"`
	Description string      `yaml:"description" json:"description"`
	Topics      []TopicSeed `yaml:"topics" json:"topics"`
}

// TopicSeed is one topic plus its module subtree.
type TopicSeed struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Icon        string       `yaml:"icon" json:"icon"`
	Order       int          `yaml:"order" json:"order"`
	Modules     []ModuleSeed `yaml:"modules" json:"modules"`
}

// ModuleSeed is one module plus its content units.
type ModuleSeed struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Order       int           `yaml:"order" json:"order"`
	Content     []ContentSeed `yaml:"content" json:"content"`
}

// ContentSeed is one typed content unit. Exactly one payload field should
// be populated, per the content_type.
type ContentSeed struct {
	ContentType   string                 `yaml:"content_type" json:"content_type"`
	Title         string                 `yaml:"title" json:"title"`
	GlossaryTerms []catalog.GlossaryTerm `yaml:"glossary_terms,omitempty" json:"glossary_terms,omitempty"`
	TheoryContent string                 `yaml:"theory_content,omitempty" json:"theory_content,omitempty"`
	Exercises     []catalog.Exercise     `yaml:"exercises,omitempty" json:"exercises,omitempty"`
	QuizQuestions []catalog.QuizQuestion `yaml:"quiz_questions,omitempty" json:"quiz_questions,omitempty"`
}
