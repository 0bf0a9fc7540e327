package postgres

import (
	"context"
	"database/sql"
	"time"

	interfaces "github.com/cemsak/lyntos-updated-sub006/internal/interfaces"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// PostgresSourceStore reads the parsed bookkeeping rows the ingestion
// pipeline writes. All queries are read-only snapshots per (client, period).
type PostgresSourceStore struct {
	db *sql.DB
}

func NewPostgresSourceStore(db *sql.DB) *PostgresSourceStore {
	return &PostgresSourceStore{db: db}
}

func (p *PostgresSourceStore) JournalLines(ctx context.Context, clientID, periodID string) ([]models.JournalLine, error) {
	const query = `SELECT voucher_id, account_code, debit, credit, entry_date
	FROM journal_lines WHERE client_id = $1 AND period_id = $2 ORDER BY voucher_id, account_code`

	rows, err := p.db.QueryContext(ctx, query, clientID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.JournalLine
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.VoucherID, &l.AccountCode, &l.Debit, &l.Credit, &l.Date); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (p *PostgresSourceStore) LedgerLines(ctx context.Context, clientID, periodID string) ([]models.LedgerLine, error) {
	const query = `SELECT account_code, COALESCE(account_name, ''), debit, credit, COALESCE(month, 0)
	FROM ledger_lines WHERE client_id = $1 AND period_id = $2 ORDER BY account_code, month`

	rows, err := p.db.QueryContext(ctx, query, clientID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.LedgerLine
	for rows.Next() {
		var l models.LedgerLine
		var month int
		if err := rows.Scan(&l.AccountCode, &l.AccountName, &l.Debit, &l.Credit, &month); err != nil {
			return nil, err
		}
		l.Month = time.Month(month)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (p *PostgresSourceStore) TrialBalanceRows(ctx context.Context, clientID, periodID string) ([]models.TrialBalanceRow, error) {
	const query = `SELECT account_code, COALESCE(account_name, ''), debit, credit
	FROM trial_balance_rows WHERE client_id = $1 AND period_id = $2 ORDER BY account_code`

	rows, err := p.db.QueryContext(ctx, query, clientID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TrialBalanceRow
	for rows.Next() {
		var r models.TrialBalanceRow
		if err := rows.Scan(&r.AccountCode, &r.AccountName, &r.Debit, &r.Credit); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresSourceStore) OpeningBalanceLines(ctx context.Context, clientID, periodID string) ([]models.OpeningBalanceLine, error) {
	const query = `SELECT account_code, debit, credit, source_kind
	FROM opening_balance_lines WHERE client_id = $1 AND period_id = $2 ORDER BY account_code`

	rows, err := p.db.QueryContext(ctx, query, clientID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.OpeningBalanceLine
	for rows.Next() {
		var l models.OpeningBalanceLine
		var kind string
		if err := rows.Scan(&l.AccountCode, &l.Debit, &l.Credit, &kind); err != nil {
			return nil, err
		}
		l.SourceKind = models.OpeningSourceKind(kind)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

var _ interfaces.SourceStore = (*PostgresSourceStore)(nil)
