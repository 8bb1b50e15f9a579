// Package catalog defines the curriculum content entities and the document
// store they live in: grades, topics, modules, typed content units, and
// user progress records.
package catalog

import "time"

// Content type values recognized by the API.
const (
	ContentGlossary          = "glossary"
	ContentTheory            = "theory"
	ContentLearningExercises = "learning_exercises"
	ContentPracticeExercises = "practice_exercises"
	ContentQuiz              = "quiz"
)

// ContentTypes lists the recognized content type values in display order.
var ContentTypes = []string{
	ContentGlossary,
	ContentTheory,
	ContentLearningExercises,
	ContentPracticeExercises,
	ContentQuiz,
}

// ValidContentType reports whether t is a recognized content type.
func ValidContentType(t string) bool {
	for _, v := range ContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Grade is a school year level (7 through 12) at the top of the hierarchy.
type Grade struct {
	ID          string    `json:"id" yaml:"id"`
	GradeNumber int       `json:"grade_number" yaml:"grade_number"`
	GradeName   string    `json:"grade_name" yaml:"grade_name"`
	Description string    `json:"description" yaml:"description"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Topic is a named subject area within a grade. Order defines the display
// sequence within the grade.
type Topic struct {
	ID          string    `json:"id" yaml:"id"`
	GradeID     string    `json:"grade_id" yaml:"grade_id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"`
	Order       int       `json:"order" yaml:"order"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Module is an ordered learning unit within a topic.
type Module struct {
	ID          string    `json:"id" yaml:"id"`
	TopicID     string    `json:"topic_id" yaml:"topic_id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Order       int       `json:"order" yaml:"order"`
	IsActive    bool      `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Content is a typed teaching artifact attached to a module. ContentType
// determines which payload field carries the material; the others stay
// empty. At most one document per (module_id, content_type) is expected,
// but the store does not enforce it.
type Content struct {
	ID            string         `json:"id" yaml:"id"`
	ModuleID      string         `json:"module_id" yaml:"module_id"`
	ContentType   string         `json:"content_type" yaml:"content_type"`
	Title         string         `json:"title" yaml:"title"`
	GlossaryTerms []GlossaryTerm `json:"glossary_terms,omitempty" yaml:"glossary_terms,omitempty"`
	TheoryContent string         `json:"theory_content,omitempty" yaml:"theory_content,omitempty"`
	Exercises     []Exercise     `json:"exercises,omitempty" yaml:"exercises,omitempty"`
	QuizQuestions []QuizQuestion `json:"quiz_questions,omitempty" yaml:"quiz_questions,omitempty"`
	CreatedAt     time.Time      `json:"created_at" yaml:"created_at"`
}

// GlossaryTerm is a term/definition pair embedded in glossary content.
type GlossaryTerm struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
	Example    string `json:"example,omitempty" yaml:"example,omitempty"`
}

// Exercise is a multiple-choice problem embedded in exercise content.
// Exactly one option should be marked correct; the store does not check it.
type Exercise struct {
	Problem     string       `json:"problem" yaml:"problem"`
	Options     []QuizOption `json:"options" yaml:"options"`
	Difficulty  string       `json:"difficulty" yaml:"difficulty"` // easy, medium, hard
	Explanation string       `json:"explanation" yaml:"explanation"`
}

// QuizQuestion is a multiple-choice question embedded in quiz content.
type QuizQuestion struct {
	Question    string       `json:"question" yaml:"question"`
	Options     []QuizOption `json:"options" yaml:"options"`
	Explanation string       `json:"explanation" yaml:"explanation"`
}

// QuizOption is a single answer choice.
type QuizOption struct {
	OptionText string `json:"option_text" yaml:"option_text"`
	IsCorrect  bool   `json:"is_correct" yaml:"is_correct"`
}

// User is a learner's progress record. Progress is an opaque client-defined
// map; the server stores it and never interprets it.
type User struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	CurrentGrade int            `json:"current_grade" yaml:"current_grade"`
	Progress     map[string]any `json:"progress" yaml:"progress"`
	CreatedAt    time.Time      `json:"created_at" yaml:"created_at"`
}
