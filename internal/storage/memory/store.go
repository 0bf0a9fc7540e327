package memory

import (
	"context"
	"sync"

	interfaces "github.com/cemsak/lyntos-updated-sub006/internal/interfaces"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
)

type periodKey struct {
	clientID string
	periodID string
}

// MemorySourceStore is an in-memory implementation of interfaces.SourceStore.
// It holds the parsed source records per (client, period) and is safe for
// concurrent seeding and reading. Used by tests and local development.
type MemorySourceStore struct {
	mu           sync.Mutex
	journal      map[periodKey][]models.JournalLine
	ledger       map[periodKey][]models.LedgerLine
	trialBalance map[periodKey][]models.TrialBalanceRow
	opening      map[periodKey][]models.OpeningBalanceLine
}

// NewMemorySourceStore creates an empty store.
func NewMemorySourceStore() *MemorySourceStore {
	return &MemorySourceStore{
		journal:      make(map[periodKey][]models.JournalLine),
		ledger:       make(map[periodKey][]models.LedgerLine),
		trialBalance: make(map[periodKey][]models.TrialBalanceRow),
		opening:      make(map[periodKey][]models.OpeningBalanceLine),
	}
}

// SeedJournal replaces the journal rows of a period, the same way
// re-ingestion replaces rows wholesale.
func (m *MemorySourceStore) SeedJournal(clientID, periodID string, lines []models.JournalLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal[periodKey{clientID, periodID}] = append([]models.JournalLine(nil), lines...)
}

// SeedLedger replaces the ledger rows of a period.
func (m *MemorySourceStore) SeedLedger(clientID, periodID string, lines []models.LedgerLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledger[periodKey{clientID, periodID}] = append([]models.LedgerLine(nil), lines...)
}

// SeedTrialBalance replaces the trial-balance rows of a period.
func (m *MemorySourceStore) SeedTrialBalance(clientID, periodID string, rows []models.TrialBalanceRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trialBalance[periodKey{clientID, periodID}] = append([]models.TrialBalanceRow(nil), rows...)
}

// SeedOpening replaces the opening-balance rows of a period.
func (m *MemorySourceStore) SeedOpening(clientID, periodID string, lines []models.OpeningBalanceLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opening[periodKey{clientID, periodID}] = append([]models.OpeningBalanceLine(nil), lines...)
}

// JournalLines returns a copy so callers can never mutate the seeded rows.
func (m *MemorySourceStore) JournalLines(ctx context.Context, clientID, periodID string) ([]models.JournalLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.JournalLine(nil), m.journal[periodKey{clientID, periodID}]...), nil
}

func (m *MemorySourceStore) LedgerLines(ctx context.Context, clientID, periodID string) ([]models.LedgerLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.LedgerLine(nil), m.ledger[periodKey{clientID, periodID}]...), nil
}

func (m *MemorySourceStore) TrialBalanceRows(ctx context.Context, clientID, periodID string) ([]models.TrialBalanceRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.TrialBalanceRow(nil), m.trialBalance[periodKey{clientID, periodID}]...), nil
}

func (m *MemorySourceStore) OpeningBalanceLines(ctx context.Context, clientID, periodID string) ([]models.OpeningBalanceLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.OpeningBalanceLine(nil), m.opening[periodKey{clientID, periodID}]...), nil
}

// Compile-time check: ensure MemorySourceStore implements SourceStore.
var _ interfaces.SourceStore = (*MemorySourceStore)(nil)
