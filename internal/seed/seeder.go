package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aulamath/aulamath/internal/catalog"
)

// Apply resets the catalog to the reference dataset: it deletes every
// document in the four content collections, then re-inserts the dataset
// tree, wiring the store-generated ids from parent to child.
//
// The operation is destructive and total — anything outside the dataset is
// lost. It is not transactional; a failure partway through leaves a
// partially-seeded catalog. It must not run concurrently with itself or
// with read traffic.
func Apply(ctx context.Context, ds *Dataset, store catalog.Store) error {
	if err := store.ClearCatalog(ctx); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	var gradeCount, topicCount, moduleCount, contentCount int

	for _, gs := range ds.Grades {
		gradeIDs, err := store.InsertGrades(ctx, []catalog.Grade{{
			GradeNumber: gs.GradeNumber,
			GradeName:   gs.GradeName,
			Description: gs.Description,
			IsActive:    true,
		}})
		if err != nil {
			return fmt.Errorf("seeding grade %d: %w", gs.GradeNumber, err)
		}
		gradeID := gradeIDs[0]
		gradeCount++

		for _, ts := range gs.Topics {
			topicIDs, err := store.InsertTopics(ctx, []catalog.Topic{{
				GradeID:     gradeID,
				Name:        ts.Name,
				Description: ts.Description,
				Icon:        ts.Icon,
				Order:       ts.Order,
				IsActive:    true,
			}})
			if err != nil {
				return fmt.Errorf("seeding topic %q: %w", ts.Name, err)
			}
			topicID := topicIDs[0]
			topicCount++

			for _, ms := range ts.Modules {
				moduleIDs, err := store.InsertModules(ctx, []catalog.Module{{
					TopicID:     topicID,
					Name:        ms.Name,
					Description: ms.Description,
					Order:       ms.Order,
					IsActive:    true,
				}})
				if err != nil {
					return fmt.Errorf("seeding module %q: %w", ms.Name, err)
				}
				moduleID := moduleIDs[0]
				moduleCount++

				if len(ms.Content) == 0 {
					continue
				}

				units := make([]catalog.Content, 0, len(ms.Content))
				for _, cs := range ms.Content {
					units = append(units, catalog.Content{
						ModuleID:      moduleID,
						ContentType:   cs.ContentType,
						Title:         cs.Title,
						GlossaryTerms: cs.GlossaryTerms,
						TheoryContent: cs.TheoryContent,
						Exercises:     cs.Exercises,
						QuizQuestions: cs.QuizQuestions,
					})
				}
				if _, err := store.InsertContent(ctx, units); err != nil {
					return fmt.Errorf("seeding content for module %q: %w", ms.Name, err)
				}
				contentCount += len(units)
			}
		}
	}

	slog.Info("catalog seeded",
		"grades", gradeCount,
		"topics", topicCount,
		"modules", moduleCount,
		"content", contentCount,
	)
	return nil
}
