package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// collections are the five document tables. Each stores opaque-id jsonb
// documents; there are no foreign keys or uniqueness constraints beyond
// the primary key, matching the reference store.
var collections = []string{"grades", "topics", "modules", "content", "users"}

// PostgresStore is a PostgreSQL-backed Store. Each collection is a table
// of (id char(24), doc jsonb); filters and sorts address jsonb fields so
// the documents keep their wire shape end to end.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed catalog store and ensures
// the collection tables exist.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	for _, table := range collections {
		_, err := pool.Exec(ctx, fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (id char(24) PRIMARY KEY, doc jsonb NOT NULL)`, table))
		if err != nil {
			return nil, fmt.Errorf("create table %s: %w", table, err)
		}
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) ListGrades(ctx context.Context) ([]Grade, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, doc FROM grades
		 WHERE (doc->>'is_active')::boolean
		 ORDER BY (doc->>'grade_number')::int ASC
		 LIMIT $1`,
		maxListResults,
	)
	if err != nil {
		return nil, fmt.Errorf("query grades: %w", err)
	}
	defer rows.Close()

	grades := []Grade{}
	for rows.Next() {
		var g Grade
		if err := scanDoc(rows, &g, &g.ID); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

func (s *PostgresStore) GetGrade(ctx context.Context, id string) (*Grade, error) {
	var g Grade
	if err := s.getDoc(ctx, "grades", id, &g, &g.ID); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *PostgresStore) ListTopicsByGrade(ctx context.Context, gradeID string) ([]Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, doc FROM topics
		 WHERE doc->>'grade_id' = $1
		   AND (doc->>'is_active')::boolean
		 ORDER BY (doc->>'order')::int ASC
		 LIMIT $2`,
		gradeID,
		maxListResults,
	)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	topics := []Topic{}
	for rows.Next() {
		var t Topic
		if err := scanDoc(rows, &t, &t.ID); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (s *PostgresStore) GetTopic(ctx context.Context, id string) (*Topic, error) {
	var t Topic
	if err := s.getDoc(ctx, "topics", id, &t, &t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *PostgresStore) ListModulesByTopic(ctx context.Context, topicID string) ([]Module, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, doc FROM modules
		 WHERE doc->>'topic_id' = $1
		   AND (doc->>'is_active')::boolean
		 ORDER BY (doc->>'order')::int ASC
		 LIMIT $2`,
		topicID,
		maxListResults,
	)
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}
	defer rows.Close()

	modules := []Module{}
	for rows.Next() {
		var m Module
		if err := scanDoc(rows, &m, &m.ID); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (s *PostgresStore) GetModule(ctx context.Context, id string) (*Module, error) {
	var m Module
	if err := s.getDoc(ctx, "modules", id, &m, &m.ID); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PostgresStore) ListContentByModule(ctx context.Context, moduleID string) ([]Content, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	// No ordering guarantee for content listings.
	rows, err := s.pool.Query(ctx,
		`SELECT id, doc FROM content
		 WHERE doc->>'module_id' = $1
		 LIMIT $2`,
		moduleID,
		maxListResults,
	)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	content := []Content{}
	for rows.Next() {
		var c Content
		if err := scanDoc(rows, &c, &c.ID); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		content = append(content, c)
	}
	return content, rows.Err()
}

func (s *PostgresStore) GetContentByType(ctx context.Context, moduleID, contentType string) (*Content, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var id string
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, doc FROM content
		 WHERE doc->>'module_id' = $1
		   AND doc->>'content_type' = $2
		 LIMIT 1`,
		moduleID,
		contentType,
	).Scan(&id, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}

	var c Content
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	c.ID = id
	return &c, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, u User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	u.ID = NewID()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Progress == nil {
		u.Progress = map[string]any{}
	}

	if err := s.insertDoc(ctx, "users", u.ID, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := s.getDoc(ctx, "users", id, &u, &u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) CountGrades(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM grades`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count grades: %w", err)
	}
	return count, nil
}

// ClearCatalog deletes all documents from the four content collections.
// Not transactional: a failure partway through leaves a partial state,
// matching the reference seeder.
func (s *PostgresStore) ClearCatalog(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	for _, table := range []string{"grades", "topics", "modules", "content"} {
		if _, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *PostgresStore) InsertGrades(ctx context.Context, grades []Grade) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ids := make([]string, 0, len(grades))
	for _, g := range grades {
		g.ID = NewID()
		stampGrade(&g)
		if err := s.insertDoc(ctx, "grades", g.ID, g); err != nil {
			return nil, fmt.Errorf("insert grade: %w", err)
		}
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func (s *PostgresStore) InsertTopics(ctx context.Context, topics []Topic) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ids := make([]string, 0, len(topics))
	for _, t := range topics {
		t.ID = NewID()
		stampTopic(&t)
		if err := s.insertDoc(ctx, "topics", t.ID, t); err != nil {
			return nil, fmt.Errorf("insert topic: %w", err)
		}
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (s *PostgresStore) InsertModules(ctx context.Context, modules []Module) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		m.ID = NewID()
		stampModule(&m)
		if err := s.insertDoc(ctx, "modules", m.ID, m); err != nil {
			return nil, fmt.Errorf("insert module: %w", err)
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (s *PostgresStore) InsertContent(ctx context.Context, content []Content) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	ids := make([]string, 0, len(content))
	for _, c := range content {
		c.ID = NewID()
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		if err := s.insertDoc(ctx, "content", c.ID, c); err != nil {
			return nil, fmt.Errorf("insert content: %w", err)
		}
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *PostgresStore) insertDoc(ctx context.Context, table, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode doc: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, table),
		id, data)
	return err
}

func (s *PostgresStore) getDoc(ctx context.Context, table, id string, dest any, destID *string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var docID string
	var doc []byte
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT id, doc FROM %s WHERE id = $1`, table),
		id,
	).Scan(&docID, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get from %s: %w", table, err)
	}

	if err := json.Unmarshal(doc, dest); err != nil {
		return fmt.Errorf("decode doc from %s: %w", table, err)
	}
	*destID = docID
	return nil
}

func scanDoc(rows pgx.Rows, dest any, destID *string) error {
	var id string
	var doc []byte
	if err := rows.Scan(&id, &doc); err != nil {
		return err
	}
	if err := json.Unmarshal(doc, dest); err != nil {
		return err
	}
	*destID = id
	return nil
}
