package interfaces

import (
	"context"

	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

// SourceStore loads the parsed bookkeeping records the ingestion layer
// has written for a (client, period). The engine only reads; re-ingestion
// replaces the rows wholesale, so one load is one consistent snapshot.
type SourceStore interface {
	JournalLines(ctx context.Context, clientID, periodID string) ([]models.JournalLine, error)
	LedgerLines(ctx context.Context, clientID, periodID string) ([]models.LedgerLine, error)
	TrialBalanceRows(ctx context.Context, clientID, periodID string) ([]models.TrialBalanceRow, error)
	OpeningBalanceLines(ctx context.Context, clientID, periodID string) ([]models.OpeningBalanceLine, error)
}
