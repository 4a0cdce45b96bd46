package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikey/scamshield/internal/core"
	"go.uber.org/zap"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLSource reads training examples from a table with text and label columns
type SQLSource struct {
	db     *sql.DB
	table  string
	driver string
	logger *zap.Logger
}

// NewSQLiteSource opens a SQLite corpus, creating the table if needed
func NewSQLiteSource(dbPath, table string, logger *zap.Logger) (*SQLSource, error) {
	return newSQLSource("sqlite3", dbPath, table, `
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			label TEXT NOT NULL
		)
	`, logger)
}

// NewMySQLSource opens a MySQL corpus, creating the table if needed
func NewMySQLSource(dsn, table string, logger *zap.Logger) (*SQLSource, error) {
	return newSQLSource("mysql", dsn, table, `
		CREATE TABLE IF NOT EXISTS %s (
			id INT AUTO_INCREMENT PRIMARY KEY,
			text TEXT NOT NULL,
			label VARCHAR(64) NOT NULL,
			INDEX idx_label (label)
		)
	`, logger)
}

func newSQLSource(driver, dsn, table, schema string, logger *zap.Logger) (*SQLSource, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid corpus table name: %q", table)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if _, err := db.Exec(fmt.Sprintf(schema, table)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create corpus table: %w", err)
	}

	return &SQLSource{db: db, table: table, driver: driver, logger: logger}, nil
}

// Load implements core.CorpusSource. Rows are returned in insertion order so
// that fitting stays reproducible.
func (s *SQLSource) Load(ctx context.Context) ([]core.TrainingExample, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT text, label FROM %s ORDER BY id`, s.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus: %w", err)
	}
	defer rows.Close()

	var examples []core.TrainingExample
	for rows.Next() {
		var ex core.TrainingExample
		if err := rows.Scan(&ex.Text, &ex.Label); err != nil {
			return nil, fmt.Errorf("failed to scan corpus row: %w", err)
		}
		examples = append(examples, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus rows: %w", err)
	}

	s.logger.Info("Loaded training corpus",
		zap.String("driver", s.driver),
		zap.String("table", s.table),
		zap.Int("examples", len(examples)))
	return examples, nil
}

// insert appends examples to the corpus table in one transaction
func (s *SQLSource) insert(ctx context.Context, examples []core.TrainingExample) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (text, label) VALUES (?, ?)`, s.table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ex := range examples {
		if _, err := stmt.ExecContext(ctx, ex.Text, ex.Label); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert corpus example: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit corpus examples: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLSource) Close() error {
	return s.db.Close()
}
