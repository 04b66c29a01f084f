package query

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/config"
	"github.com/smallworld/txstats/internal/logging"
	"github.com/smallworld/txstats/internal/model"
	"github.com/smallworld/txstats/internal/service"
)

type stubRuntime struct {
	svc *service.Service
	err error
}

func (s *stubRuntime) Service(ctx context.Context) (*service.Service, error) {
	return s.svc, s.err
}

func (s *stubRuntime) OutputFormat() string { return "json" }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func newStubRuntime() *stubRuntime {
	txs := []model.Transaction{
		{MTN: 1, Amount: 500, SenderFullName: "John", BeneficiaryFullName: "Jane", IssueID: intPtr(7)},
		{MTN: 2, Amount: 300, SenderFullName: "Jane", BeneficiaryFullName: "Tom", IssueSolved: true, IssueMessage: strPtr("ok")},
		{MTN: 3, Amount: 700, SenderFullName: "John", BeneficiaryFullName: "Jane"},
	}
	return &stubRuntime{svc: service.NewService(txs, config.NewDefault(), logging.Discard())}
}

func execute(t *testing.T, rt Runtime, args ...string) []byte {
	t.Helper()

	cmd := NewQueryCmd(rt)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("%v: unexpected error: %v", args, err)
	}
	return out.Bytes()
}

func TestQueryCmd_Amounts(t *testing.T) {
	rt := newStubRuntime()

	cases := []struct {
		args []string
		want float64
	}{
		{[]string{"total"}, 1500},
		{[]string{"max"}, 700},
		{[]string{"sent-by", "John"}, 1200},
		{[]string{"sent-by", "john"}, 0},
		{[]string{"top-sender"}, 1200},
	}
	for _, tc := range cases {
		var res amountResult
		if err := json.Unmarshal(execute(t, rt, tc.args...), &res); err != nil {
			t.Fatalf("%v: invalid JSON: %v", tc.args, err)
		}
		if res.Amount != tc.want {
			t.Errorf("%v: amount %v, want %v", tc.args, res.Amount, tc.want)
		}
	}
}

func TestQueryCmd_Top(t *testing.T) {
	var txs []model.Transaction
	if err := json.Unmarshal(execute(t, newStubRuntime(), "top", "--limit", "2"), &txs); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(txs) != 2 || txs[0].MTN != 3 || txs[1].MTN != 1 {
		t.Fatalf("unexpected top transactions: %+v", txs)
	}
}

func TestQueryCmd_TopInvalidLimit(t *testing.T) {
	cmd := NewQueryCmd(newStubRuntime())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"top", "--limit", "0"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a zero limit")
	}
}

func TestQueryCmd_Clients(t *testing.T) {
	var res struct {
		Count   int      `json:"count"`
		Clients []string `json:"clients"`
	}
	if err := json.Unmarshal(execute(t, newStubRuntime(), "clients", "--list"), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Count != 3 || len(res.Clients) != 3 || res.Clients[0] != "Jane" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestQueryCmd_Issues(t *testing.T) {
	rt := newStubRuntime()

	var ids []int
	if err := json.Unmarshal(execute(t, rt, "unsolved"), &ids); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(ids) != 1 || ids[0] != 7 {
		t.Fatalf("unsolved = %v, want [7]", ids)
	}

	var messages []*string
	if err := json.Unmarshal(execute(t, rt, "solved-messages"), &messages); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(messages) != 1 || *messages[0] != "ok" {
		t.Fatalf("solved messages = %v", messages)
	}
}

func TestQueryCmd_Beneficiaries(t *testing.T) {
	var index map[string]model.Transaction
	if err := json.Unmarshal(execute(t, newStubRuntime(), "beneficiaries"), &index); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(index) != 2 || index["Jane"].MTN != 3 {
		t.Fatalf("unexpected index: %+v", index)
	}
}

func TestQueryCmd_ComplianceArgument(t *testing.T) {
	var res struct {
		Client       string `json:"client"`
		HasOpenIssue bool   `json:"hasOpenIssue"`
	}
	if err := json.Unmarshal(execute(t, newStubRuntime(), "compliance", "Jane"), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Client != "Jane" || !res.HasOpenIssue {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestComplianceRunner_Prompt(t *testing.T) {
	var offered []string
	runner := &complianceRunner{
		rt: newStubRuntime(),
		prompt: func(message string, clients []string) (string, error) {
			offered = clients
			return "Tom", nil
		},
	}

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	if err := runner.Run(cmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offered) != 3 {
		t.Errorf("prompt offered %v", offered)
	}

	var res struct {
		Client       string `json:"client"`
		HasOpenIssue bool   `json:"hasOpenIssue"`
	}
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if res.Client != "Tom" || res.HasOpenIssue {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestQueryCmd_ServiceError(t *testing.T) {
	wantErr := errors.New("failed to load transactions")
	cmd := NewQueryCmd(&stubRuntime{err: wantErr})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"total"})

	if err := cmd.Execute(); !errors.Is(err, wantErr) {
		t.Fatalf("expected service error, got %v", err)
	}
}
