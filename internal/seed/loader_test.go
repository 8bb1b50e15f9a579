package seed_test

import (
	"testing"

	"github.com/aulamath/aulamath/internal/catalog"
	"github.com/aulamath/aulamath/internal/seed"
)

func TestLoad_DatasetShape(t *testing.T) {
	ds, err := seed.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(ds.Grades) != 6 {
		t.Fatalf("grades = %d, want 6", len(ds.Grades))
	}
	for i, g := range ds.Grades {
		if want := 7 + i; g.GradeNumber != want {
			t.Errorf("grades[%d].GradeNumber = %d, want %d", i, g.GradeNumber, want)
		}
		if g.GradeName == "" || g.Description == "" {
			t.Errorf("grades[%d] has empty name or description", i)
		}
	}

	grade7 := ds.Grades[0]
	if len(grade7.Topics) != 5 {
		t.Fatalf("grade 7 topics = %d, want 5", len(grade7.Topics))
	}
	for i, topic := range grade7.Topics {
		if topic.Order != i+1 {
			t.Errorf("grade 7 topics[%d].Order = %d, want %d", i, topic.Order, i+1)
		}
	}

	// Grades 8-12 carry three placeholder topics each.
	for _, g := range ds.Grades[1:] {
		if len(g.Topics) != 3 {
			t.Errorf("grade %d topics = %d, want 3", g.GradeNumber, len(g.Topics))
		}
	}
}

func TestLoad_FirstModuleContent(t *testing.T) {
	ds, err := seed.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	topic1 := ds.Grades[0].Topics[0]
	if len(topic1.Modules) != 4 {
		t.Fatalf("grade 7 topic 1 modules = %d, want 4", len(topic1.Modules))
	}

	module1 := topic1.Modules[0]
	if len(module1.Content) != 5 {
		t.Fatalf("first module content = %d units, want 5", len(module1.Content))
	}

	byType := map[string]seed.ContentSeed{}
	for _, c := range module1.Content {
		if _, dup := byType[c.ContentType]; dup {
			t.Errorf("duplicate content type %q in first module", c.ContentType)
		}
		byType[c.ContentType] = c
	}
	for _, want := range catalog.ContentTypes {
		if _, ok := byType[want]; !ok {
			t.Errorf("first module missing content type %q", want)
		}
	}

	if len(byType[catalog.ContentGlossary].GlossaryTerms) != 5 {
		t.Errorf("glossary terms = %d, want 5", len(byType[catalog.ContentGlossary].GlossaryTerms))
	}
	if byType[catalog.ContentTheory].TheoryContent == "" {
		t.Error("theory content is empty")
	}
	if len(byType[catalog.ContentLearningExercises].Exercises) != 3 {
		t.Errorf("learning exercises = %d, want 3",
			len(byType[catalog.ContentLearningExercises].Exercises))
	}
	if len(byType[catalog.ContentPracticeExercises].Exercises) != 3 {
		t.Errorf("practice exercises = %d, want 3",
			len(byType[catalog.ContentPracticeExercises].Exercises))
	}
	if len(byType[catalog.ContentQuiz].QuizQuestions) != 5 {
		t.Errorf("quiz questions = %d, want 5", len(byType[catalog.ContentQuiz].QuizQuestions))
	}
}

func TestLoad_ExerciseShapes(t *testing.T) {
	ds, err := seed.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	difficulties := map[string]bool{"easy": true, "medium": true, "hard": true}

	for _, g := range ds.Grades {
		for _, topic := range g.Topics {
			for _, module := range topic.Modules {
				for _, c := range module.Content {
					for _, ex := range c.Exercises {
						if !difficulties[ex.Difficulty] {
							t.Errorf("exercise %q difficulty = %q, want easy/medium/hard",
								ex.Problem, ex.Difficulty)
						}
						if len(ex.Options) < 2 {
							t.Errorf("exercise %q has %d options", ex.Problem, len(ex.Options))
						}
					}
					for _, q := range c.QuizQuestions {
						if len(q.Options) < 2 {
							t.Errorf("question %q has %d options", q.Question, len(q.Options))
						}
					}
				}
			}
		}
	}
}
