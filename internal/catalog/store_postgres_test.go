package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/aulamath/aulamath/internal/catalog"
)

// startPostgres spins up a throwaway PostgreSQL container and returns a
// connected pool. Skipped in short mode and when Docker is unavailable.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("aulamath_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = ctr.Terminate(termCtx)
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("pgxpool.New() error = %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func TestPostgresStore(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	store, err := catalog.NewPostgresStore(ctx, pool)
	if err != nil {
		t.Fatalf("NewPostgresStore() error = %v", err)
	}

	t.Run("grades filter and sort", func(t *testing.T) {
		_, err := store.InsertGrades(ctx, []catalog.Grade{
			{GradeNumber: 9, GradeName: "9no Grado", IsActive: true},
			{GradeNumber: 7, GradeName: "7mo Grado", IsActive: true},
			{GradeNumber: 8, GradeName: "8vo Grado", IsActive: false},
		})
		if err != nil {
			t.Fatalf("InsertGrades() error = %v", err)
		}

		grades, err := store.ListGrades(ctx)
		if err != nil {
			t.Fatalf("ListGrades() error = %v", err)
		}
		if len(grades) != 2 {
			t.Fatalf("ListGrades() count = %d, want 2", len(grades))
		}
		if grades[0].GradeNumber != 7 || grades[1].GradeNumber != 9 {
			t.Errorf("ListGrades() order = [%d, %d], want [7, 9]",
				grades[0].GradeNumber, grades[1].GradeNumber)
		}

		count, err := store.CountGrades(ctx)
		if err != nil {
			t.Fatalf("CountGrades() error = %v", err)
		}
		if count != 3 {
			t.Errorf("CountGrades() = %d, want 3 (count ignores is_active)", count)
		}
	})

	t.Run("get by id round trip", func(t *testing.T) {
		ids, err := store.InsertGrades(ctx, []catalog.Grade{
			{GradeNumber: 10, GradeName: "10mo Grado", Description: "Décimo grado", IsActive: true},
		})
		if err != nil {
			t.Fatalf("InsertGrades() error = %v", err)
		}

		grade, err := store.GetGrade(ctx, ids[0])
		if err != nil {
			t.Fatalf("GetGrade() error = %v", err)
		}
		if grade.ID != ids[0] {
			t.Errorf("GetGrade() id = %q, want %q", grade.ID, ids[0])
		}
		if grade.GradeName != "10mo Grado" {
			t.Errorf("GradeName = %q, want 10mo Grado", grade.GradeName)
		}
		if grade.CreatedAt.IsZero() {
			t.Error("CreatedAt should round-trip through jsonb")
		}

		_, err = store.GetGrade(ctx, catalog.NewID())
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Errorf("GetGrade(unknown) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("topic and module hierarchy", func(t *testing.T) {
		gradeIDs, _ := store.InsertGrades(ctx, []catalog.Grade{
			{GradeNumber: 11, GradeName: "11mo Grado", IsActive: true},
		})
		topicIDs, err := store.InsertTopics(ctx, []catalog.Topic{
			{GradeID: gradeIDs[0], Name: "Estadística", Icon: "chart", Order: 2, IsActive: true},
			{GradeID: gradeIDs[0], Name: "Precálculo", Icon: "function", Order: 1, IsActive: true},
		})
		if err != nil {
			t.Fatalf("InsertTopics() error = %v", err)
		}

		topics, err := store.ListTopicsByGrade(ctx, gradeIDs[0])
		if err != nil {
			t.Fatalf("ListTopicsByGrade() error = %v", err)
		}
		if len(topics) != 2 || topics[0].Name != "Precálculo" {
			t.Errorf("ListTopicsByGrade() = %d topics, first %q; want 2 with Precálculo first",
				len(topics), topics[0].Name)
		}

		moduleIDs, err := store.InsertModules(ctx, []catalog.Module{
			{TopicID: topicIDs[1], Name: "Funciones", Order: 1, IsActive: true},
		})
		if err != nil {
			t.Fatalf("InsertModules() error = %v", err)
		}

		modules, err := store.ListModulesByTopic(ctx, topicIDs[1])
		if err != nil {
			t.Fatalf("ListModulesByTopic() error = %v", err)
		}
		if len(modules) != 1 || modules[0].ID != moduleIDs[0] {
			t.Errorf("ListModulesByTopic() = %d modules, want the inserted one", len(modules))
		}
	})

	t.Run("content payload round trip", func(t *testing.T) {
		moduleID := catalog.NewID()
		_, err := store.InsertContent(ctx, []catalog.Content{
			{
				ModuleID:    moduleID,
				ContentType: catalog.ContentQuiz,
				Title:       "Quiz",
				QuizQuestions: []catalog.QuizQuestion{
					{
						Question: "¿Cuál es mayor: -10 o -5?",
						Options: []catalog.QuizOption{
							{OptionText: "-10", IsCorrect: false},
							{OptionText: "-5", IsCorrect: true},
						},
						Explanation: "-5 está más cerca del cero.",
					},
				},
			},
		})
		if err != nil {
			t.Fatalf("InsertContent() error = %v", err)
		}

		quiz, err := store.GetContentByType(ctx, moduleID, catalog.ContentQuiz)
		if err != nil {
			t.Fatalf("GetContentByType() error = %v", err)
		}
		if len(quiz.QuizQuestions) != 1 || len(quiz.QuizQuestions[0].Options) != 2 {
			t.Errorf("quiz payload did not round-trip: %+v", quiz.QuizQuestions)
		}

		_, err = store.GetContentByType(ctx, moduleID, catalog.ContentTheory)
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Errorf("GetContentByType(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("users", func(t *testing.T) {
		user, err := store.CreateUser(ctx, catalog.User{
			Name:         "Ana",
			CurrentGrade: 7,
			Progress:     map[string]any{"modulo-1": "completado"},
		})
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if !catalog.ValidID(user.ID) {
			t.Errorf("CreateUser() id = %q, want valid identifier", user.ID)
		}

		got, err := store.GetUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if got.Name != "Ana" || got.CurrentGrade != 7 {
			t.Errorf("GetUser() = %q/%d, want Ana/7", got.Name, got.CurrentGrade)
		}
		if got.Progress["modulo-1"] != "completado" {
			t.Errorf("Progress = %v, want opaque map preserved", got.Progress)
		}
	})

	t.Run("clear catalog keeps users", func(t *testing.T) {
		user, err := store.CreateUser(ctx, catalog.User{Name: "Luis", CurrentGrade: 8})
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}

		if err := store.ClearCatalog(ctx); err != nil {
			t.Fatalf("ClearCatalog() error = %v", err)
		}

		count, err := store.CountGrades(ctx)
		if err != nil {
			t.Fatalf("CountGrades() error = %v", err)
		}
		if count != 0 {
			t.Errorf("CountGrades() after clear = %d, want 0", count)
		}
		if _, err := store.GetUser(ctx, user.ID); err != nil {
			t.Errorf("GetUser() after clear error = %v; users should survive", err)
		}
	})
}
