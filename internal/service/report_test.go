package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/smallworld/txstats/internal/config"
	"github.com/smallworld/txstats/internal/logging"
	"github.com/smallworld/txstats/internal/model"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func fixture() []model.Transaction {
	return []model.Transaction{
		{MTN: 1, Amount: 430.2, SenderFullName: "Tom Shelby", BeneficiaryFullName: "Alfie Solomons", IssueID: intPtr(1), IssueMessage: strPtr("Looks like money laundering")},
		{MTN: 2, Amount: 150.2, SenderFullName: "Tom Shelby", BeneficiaryFullName: "Arthur Shelby", IssueID: intPtr(2), IssueSolved: true, IssueMessage: strPtr("Never gonna give you up")},
		{MTN: 3, Amount: 67.8, SenderFullName: "Aunt Polly", BeneficiaryFullName: "Aberama Gold", IssueSolved: true},
		{MTN: 4, Amount: 985, SenderFullName: "Arthur Shelby", BeneficiaryFullName: "Ben Younger", IssueID: intPtr(15), IssueMessage: strPtr("Something's fishy")},
	}
}

func newTestService(txs []model.Transaction) *Service {
	return NewService(txs, config.NewDefault(), logging.Discard())
}

func TestService_Report(t *testing.T) {
	svc := newTestService(fixture())

	r, err := svc.Report(context.Background(), ReportOptions{
		SenderName:       "Tom Shelby",
		ComplianceClient: "Arthur Shelby",
		TopN:             3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4", r.RecordCount)
	}
	if r.TotalAmount < 1633.19 || r.TotalAmount > 1633.21 {
		t.Errorf("TotalAmount = %v, want 1633.2", r.TotalAmount)
	}
	if r.TotalAmountSentBy < 580.39 || r.TotalAmountSentBy > 580.41 {
		t.Errorf("TotalAmountSentBy = %v, want 580.4", r.TotalAmountSentBy)
	}
	if r.MaxAmount != 985 {
		t.Errorf("MaxAmount = %v, want 985", r.MaxAmount)
	}
	if len(r.TopTransactions) != 3 || r.TopTransactions[0].MTN != 4 || r.TopTransactions[2].MTN != 2 {
		t.Errorf("unexpected top transactions: %+v", r.TopTransactions)
	}
	if r.UniqueClients != 6 {
		t.Errorf("UniqueClients = %d, want 6", r.UniqueClients)
	}
	if !r.HasOpenComplianceIssue {
		t.Error("Arthur Shelby should have an open compliance issue")
	}
	if want := []int{1, 15}; !reflect.DeepEqual(r.UnsolvedIssueIDs, want) {
		t.Errorf("UnsolvedIssueIDs = %v, want %v", r.UnsolvedIssueIDs, want)
	}
	if len(r.SolvedIssueMessages) != 2 || *r.SolvedIssueMessages[0] != "Never gonna give you up" || r.SolvedIssueMessages[1] != nil {
		t.Errorf("unexpected solved messages: %v", r.SolvedIssueMessages)
	}
	if len(r.TransactionsByBeneficiary) != 4 {
		t.Errorf("TransactionsByBeneficiary has %d entries, want 4", len(r.TransactionsByBeneficiary))
	}
	if r.TopSenderLabel() != "Arthur Shelby" || r.TopSenderTotal != 985 {
		t.Errorf("top sender = %s (%v), want Arthur Shelby (985)", r.TopSenderLabel(), r.TopSenderTotal)
	}
}

func TestService_Report_Empty(t *testing.T) {
	svc := newTestService(nil)

	r, err := svc.Report(context.Background(), svc.DefaultReportOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.TotalAmount != 0 || r.MaxAmount != 0 || r.UniqueClients != 0 {
		t.Errorf("expected zero values, got %+v", r)
	}
	if len(r.TopTransactions) != 0 || len(r.UnsolvedIssueIDs) != 0 || len(r.SolvedIssueMessages) != 0 {
		t.Errorf("expected empty collections, got %+v", r)
	}
	if r.TopSender != nil || r.TopSenderLabel() != "None" {
		t.Errorf("expected no top sender, got %v", r.TopSender)
	}
}

func TestService_Report_DefaultTopN(t *testing.T) {
	svc := newTestService(fixture())

	r, err := svc.Report(context.Background(), ReportOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.TopTransactions) != 3 {
		t.Errorf("expected 3 top transactions by default, got %d", len(r.TopTransactions))
	}
}

func TestService_Report_Cancelled(t *testing.T) {
	svc := newTestService(fixture())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Report(ctx, svc.DefaultReportOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestService_DefaultReportOptions(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Report.Sender = "Grace Burgess"
	cfg.Report.Top = 5

	opts := NewService(nil, cfg, logging.Discard()).DefaultReportOptions()
	if opts.SenderName != "Grace Burgess" || opts.TopN != 5 || opts.ComplianceClient != "Tom Shelby" {
		t.Errorf("unexpected options: %+v", opts)
	}
}
