package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cemsak/lyntos-updated-sub006/internal/config"
	"github.com/cemsak/lyntos-updated-sub006/internal/engine"
	"github.com/cemsak/lyntos-updated-sub006/internal/models"
	"github.com/cemsak/lyntos-updated-sub006/internal/storage/memory"
)

type capturingPublisher struct {
	mu     sync.Mutex
	events []any
}

func (p *capturingPublisher) Publish(topic string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newTestServer(store *memory.MemorySourceStore, pub *capturingPublisher) *Server {
	gin.SetMode(gin.TestMode)
	logger := config.NewLogger("error")
	eng := engine.New(engine.Config{}, logger)
	if pub == nil {
		return NewServer(eng, store, nil, logger)
	}
	return NewServer(eng, store, pub, logger)
}

func seedBalancedPeriod(store *memory.MemorySourceStore, clientID, periodID string) {
	amount := decimal.NewFromInt(1000)
	store.SeedJournal(clientID, periodID, []models.JournalLine{
		{VoucherID: "V1", AccountCode: "100", Debit: amount},
		{VoucherID: "V1", AccountCode: "600", Credit: amount},
	})
	store.SeedLedger(clientID, periodID, []models.LedgerLine{
		{AccountCode: "100", Debit: amount},
		{AccountCode: "600", Credit: amount},
	})
	store.SeedTrialBalance(clientID, periodID, []models.TrialBalanceRow{
		{AccountCode: "100", Debit: amount},
		{AccountCode: "600", Credit: amount},
	})
}

func TestRunStoredReturnsReportAndPublishes(t *testing.T) {
	store := memory.NewMemorySourceStore()
	seedBalancedPeriod(store, "c1", "2025-06")
	pub := &capturingPublisher{}
	router := newTestServer(store, pub).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/c1/periods/2025-06/reconciliation", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var report models.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("response is not a report: %v", err)
	}
	if report.ClientID != "c1" || report.PeriodID != "2025-06" {
		t.Fatalf("report identity wrong: %+v", report)
	}
	if len(report.BalanceChecks) != 2 || len(report.ReconciliationChecks) != 2 {
		t.Fatalf("expected 4 checks, got %+v", report.Summary)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.events))
	}
}

func TestRunPreviewValidatesBody(t *testing.T) {
	router := newTestServer(memory.NewMemorySourceStore(), nil).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation/preview", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}

	// Well-formed JSON but a malformed record: rejected as unprocessable.
	body := `{"client_id":"c1","period_id":"p1","journal":[{"voucher_id":"V1","account_code":"","debit":"10"}]}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/reconciliation/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed record, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRunStoredEmptyPeriodIsNoData(t *testing.T) {
	router := newTestServer(memory.NewMemorySourceStore(), nil).Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/c9/periods/empty/reconciliation", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var report models.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.Summary.OverallStatus != models.OverallNoData {
		t.Fatalf("expected NO_DATA, got %s", report.Summary.OverallStatus)
	}
}
