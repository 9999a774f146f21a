// ABOUTME: SQL store for analysis history and user feedback
// ABOUTME: One implementation serves SQLite and Postgres; squirrel picks the placeholder format

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"news-summarizer-api/core/domain"
	"news-summarizer-api/core/interfaces"
)

const (
	historyTable  = "query_history"
	feedbackTable = "user_feedback"
)

// dialect holds the per-driver differences
type dialect struct {
	placeholder sq.PlaceholderFormat
	schema      string
}

var dialects = map[string]dialect{
	"sqlite3": {
		placeholder: sq.Question,
		schema: `
			CREATE TABLE IF NOT EXISTS query_history (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				id TEXT NOT NULL UNIQUE,
				input_type TEXT NOT NULL,
				input_value TEXT NOT NULL,
				summary TEXT NOT NULL,
				fake_news_label TEXT NOT NULL,
				fake_news_confidence REAL NOT NULL,
				article_title TEXT NOT NULL,
				duration_ms INTEGER NOT NULL,
				created_at TIMESTAMP NOT NULL
			);
			CREATE TABLE IF NOT EXISTS user_feedback (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				id TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL,
				fake_news_label TEXT NOT NULL,
				user_feedback TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL
			);
		`,
	},
	"postgres": {
		placeholder: sq.Dollar,
		schema: `
			CREATE TABLE IF NOT EXISTS query_history (
				seq BIGSERIAL PRIMARY KEY,
				id TEXT NOT NULL UNIQUE,
				input_type TEXT NOT NULL,
				input_value TEXT NOT NULL,
				summary TEXT NOT NULL,
				fake_news_label TEXT NOT NULL,
				fake_news_confidence DOUBLE PRECISION NOT NULL,
				article_title TEXT NOT NULL,
				duration_ms BIGINT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			);
			CREATE TABLE IF NOT EXISTS user_feedback (
				seq BIGSERIAL PRIMARY KEY,
				id TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL,
				fake_news_label TEXT NOT NULL,
				user_feedback TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			);
		`,
	},
}

// Store implements HistoryStore and FeedbackStore on database/sql
type Store struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var (
	_ interfaces.HistoryStore  = (*Store)(nil)
	_ interfaces.FeedbackStore = (*Store)(nil)
)

// Open connects with the given driver ("sqlite3" or "postgres") and creates the schema
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite3" {
		// A single connection avoids "database is locked" between the history workers
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(d.placeholder),
	}, nil
}

// SaveHistory appends a history record
func (s *Store) SaveHistory(ctx context.Context, record domain.HistoryRecord) error {
	query, args, err := s.builder.Insert(historyTable).
		Columns("id", "input_type", "input_value", "summary", "fake_news_label",
			"fake_news_confidence", "article_title", "duration_ms", "created_at").
		Values(record.ID, string(record.InputType), record.InputValue, record.Summary,
			string(record.FakeNewsLabel), record.FakeNewsConfidence, record.ArticleTitle,
			record.DurationMs, createdAt(record.CreatedAt)).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// ListHistory returns history newest first
func (s *Store) ListHistory(ctx context.Context, page domain.Page) ([]domain.HistoryRecord, error) {
	query, args, err := paged(s.builder.Select("id", "input_type", "input_value", "summary",
		"fake_news_label", "fake_news_confidence", "article_title", "duration_ms", "created_at").
		From(historyTable), page).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	records := []domain.HistoryRecord{}
	for rows.Next() {
		var r domain.HistoryRecord
		var inputType, label string
		if err := rows.Scan(&r.ID, &inputType, &r.InputValue, &r.Summary, &label,
			&r.FakeNewsConfidence, &r.ArticleTitle, &r.DurationMs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		r.InputType = domain.InputType(inputType)
		r.FakeNewsLabel = domain.Verdict(label)
		r.CreatedAt = r.CreatedAt.UTC()
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return records, nil
}

// SaveFeedback appends a feedback record
func (s *Store) SaveFeedback(ctx context.Context, record domain.FeedbackRecord) error {
	query, args, err := s.builder.Insert(feedbackTable).
		Columns("id", "title", "fake_news_label", "user_feedback", "created_at").
		Values(record.ID, record.Title, record.FakeNewsLabel, record.UserFeedback, createdAt(record.CreatedAt)).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ListFeedback returns feedback newest first
func (s *Store) ListFeedback(ctx context.Context, page domain.Page) ([]domain.FeedbackRecord, error) {
	query, args, err := paged(s.builder.Select("id", "title", "fake_news_label", "user_feedback", "created_at").
		From(feedbackTable), page).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	records := []domain.FeedbackRecord{}
	for rows.Next() {
		var r domain.FeedbackRecord
		if err := rows.Scan(&r.ID, &r.Title, &r.FakeNewsLabel, &r.UserFeedback, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		r.CreatedAt = r.CreatedAt.UTC()
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return records, nil
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// paged orders newest first by insertion sequence and applies limit/offset
func paged(query sq.SelectBuilder, page domain.Page) sq.SelectBuilder {
	query = query.OrderBy("seq DESC")
	if page.Limit > 0 {
		query = query.Limit(uint64(page.Limit))
	}
	if page.Offset > 0 {
		query = query.Offset(uint64(page.Offset))
	}
	return query
}

func createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
