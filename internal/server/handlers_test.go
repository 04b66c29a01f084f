package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smallworld/txstats/internal/config"
	"github.com/smallworld/txstats/internal/logging"
	"github.com/smallworld/txstats/internal/model"
	"github.com/smallworld/txstats/internal/service"
)

func intPtr(v int) *int { return &v }

func newTestHandler(txs []model.Transaction) http.Handler {
	svc := service.NewService(txs, config.NewDefault(), logging.Discard())
	return New(svc, logging.Discard(), io.Discard)
}

func fixture() []model.Transaction {
	return []model.Transaction{
		{MTN: 1, Amount: 500, SenderFullName: "John", BeneficiaryFullName: "Jane", IssueID: intPtr(1)},
		{MTN: 2, Amount: 300, SenderFullName: "Jane", BeneficiaryFullName: "Tom"},
		{MTN: 3, Amount: 700, SenderFullName: "John", BeneficiaryFullName: "Alex"},
	}
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
	}
}

func TestHandler_Amounts(t *testing.T) {
	h := newTestHandler(fixture())

	cases := []struct {
		path string
		want float64
	}{
		{"/total", 1500},
		{"/max", 700},
		{"/senders/John/total", 1200},
		{"/senders/Nobody/total", 0},
	}
	for _, tc := range cases {
		rec := doGet(t, h, tc.path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", tc.path, rec.Code)
		}
		var body struct {
			Amount float64 `json:"amount"`
		}
		decode(t, rec, &body)
		if body.Amount != tc.want {
			t.Errorf("%s: amount %v, want %v", tc.path, body.Amount, tc.want)
		}
	}
}

func TestHandler_ClientsAndIssues(t *testing.T) {
	h := newTestHandler(fixture())

	var count struct {
		Count int `json:"count"`
	}
	decode(t, doGet(t, h, "/clients/count"), &count)
	if count.Count != 4 {
		t.Errorf("client count = %d, want 4", count.Count)
	}

	var open struct {
		HasOpenIssue bool `json:"hasOpenIssue"`
	}
	decode(t, doGet(t, h, "/clients/Jane/open-issues"), &open)
	if !open.HasOpenIssue {
		t.Error("Jane should have an open issue")
	}

	var ids []int
	decode(t, doGet(t, h, "/issues/unsolved"), &ids)
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("unsolved ids = %v, want [1]", ids)
	}

	var messages []*string
	decode(t, doGet(t, h, "/issues/solved/messages"), &messages)
	if len(messages) != 0 {
		t.Errorf("solved messages = %v, want none", messages)
	}
}

func TestHandler_Top(t *testing.T) {
	h := newTestHandler(fixture())

	var txs []model.Transaction
	decode(t, doGet(t, h, "/top?limit=2"), &txs)
	if len(txs) != 2 || txs[0].MTN != 3 || txs[1].MTN != 1 {
		t.Fatalf("unexpected top transactions: %+v", txs)
	}

	if rec := doGet(t, h, "/top?limit=zero"); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid limit: status %d, want 400", rec.Code)
	}
}

func TestHandler_TopSender(t *testing.T) {
	var body struct {
		Sender string  `json:"sender"`
		Amount float64 `json:"amount"`
	}
	decode(t, doGet(t, newTestHandler(fixture()), "/top-sender"), &body)
	if body.Sender != "John" || body.Amount != 1200 {
		t.Errorf("top sender = %+v, want John/1200", body)
	}

	if rec := doGet(t, newTestHandler(nil), "/top-sender"); rec.Code != http.StatusNotFound {
		t.Errorf("empty snapshot: status %d, want 404", rec.Code)
	}
}

func TestHandler_Report(t *testing.T) {
	h := newTestHandler(fixture())

	var report service.Report
	decode(t, doGet(t, h, "/report?sender=Jane&client=Tom&top=1"), &report)

	if report.SenderName != "Jane" || report.TotalAmountSentBy != 300 {
		t.Errorf("unexpected sender section: %s %v", report.SenderName, report.TotalAmountSentBy)
	}
	if report.ComplianceClient != "Tom" || report.HasOpenComplianceIssue {
		t.Errorf("unexpected compliance section: %s %v", report.ComplianceClient, report.HasOpenComplianceIssue)
	}
	if len(report.TopTransactions) != 1 {
		t.Errorf("expected 1 top transaction, got %d", len(report.TopTransactions))
	}
	if report.TopSender == nil || *report.TopSender != "John" {
		t.Errorf("unexpected top sender: %v", report.TopSender)
	}
}

func TestHandler_Beneficiaries(t *testing.T) {
	var index map[string]model.Transaction
	decode(t, doGet(t, newTestHandler(fixture()), "/beneficiaries"), &index)

	if len(index) != 3 || index["Alex"].MTN != 3 {
		t.Fatalf("unexpected index: %+v", index)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/total", nil)
	rec := httptest.NewRecorder()
	newTestHandler(fixture()).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rec.Code)
	}
}

func TestHandler_Health(t *testing.T) {
	rec := doGet(t, newTestHandler(fixture()), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body map[string]any
	decode(t, rec, &body)
	if body["status"] != "ok" || body["records"] != float64(3) {
		t.Fatalf("unexpected body: %v", body)
	}
}
