package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/smallworld/txstats/internal/model"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore keeps an imported transaction snapshot. Rows are read back in
// the order they were imported.
type SQLiteStore struct {
	db   DBTX
	path string
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *SQLiteStore) Transactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mtn, amount, sender_full_name, sender_age,
		       beneficiary_full_name, beneficiary_age,
		       issue_id, issue_solved, issue_message
		FROM transactions
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]model.Transaction, 0)
	for rows.Next() {
		var (
			tx           model.Transaction
			sender       sql.NullString
			beneficiary  sql.NullString
			issueID      sql.NullInt64
			issueMessage sql.NullString
		)

		err := rows.Scan(
			&tx.MTN, &tx.Amount, &sender, &tx.SenderAge,
			&beneficiary, &tx.BeneficiaryAge,
			&issueID, &tx.IssueSolved, &issueMessage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.SenderFullName = model.NameOrMissing(nullStringPtr(sender))
		tx.BeneficiaryFullName = model.NameOrMissing(nullStringPtr(beneficiary))
		if issueID.Valid {
			id := int(issueID.Int64)
			tx.IssueID = &id
		}
		tx.IssueMessage = nullStringPtr(issueMessage)

		txs = append(txs, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txs, nil
}

// Count returns the number of transactions in the snapshot.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// ImportSnapshot replaces the stored snapshot with txs in a single database
// transaction, keeping their order.
func (s *SQLiteStore) ImportSnapshot(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return ErrEmptySnapshot
	}

	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("ImportSnapshot cannot be called within an existing transaction")
	}

	dbTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := dbTx.PrepareContext(ctx, `
		INSERT INTO transactions (
			mtn, amount, sender_full_name, sender_age,
			beneficiary_full_name, beneficiary_age,
			issue_id, issue_solved, issue_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmt.Close()

	for i, tx := range txs {
		_, err := stmt.ExecContext(ctx,
			tx.MTN, tx.Amount, model.NullableName(tx.SenderFullName), tx.SenderAge,
			model.NullableName(tx.BeneficiaryFullName), tx.BeneficiaryAge,
			tx.IssueID, tx.IssueSolved, tx.IssueMessage,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %d (mtn: %d): %w", i, tx.MTN, err)
		}
	}

	return dbTx.Commit()
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
