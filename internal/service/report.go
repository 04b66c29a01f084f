package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smallworld/txstats/internal/constants"
	"github.com/smallworld/txstats/internal/model"
)

type ReportOptions struct {
	SenderName       string
	ComplianceClient string
	TopN             int
}

// Report collects the answer to every query for one snapshot.
type Report struct {
	RecordCount               int                          `json:"recordCount"`
	TotalAmount               float64                      `json:"totalAmount"`
	SenderName                string                       `json:"senderName"`
	TotalAmountSentBy         float64                      `json:"totalAmountSentBy"`
	MaxAmount                 float64                      `json:"maxAmount"`
	TopTransactions           []model.Transaction          `json:"topTransactions"`
	UniqueClients             int                          `json:"uniqueClients"`
	ComplianceClient          string                       `json:"complianceClient"`
	HasOpenComplianceIssue    bool                         `json:"hasOpenComplianceIssue"`
	SolvedIssueMessages       []*string                    `json:"solvedIssueMessages"`
	UnsolvedIssueIDs          []int                        `json:"unsolvedIssueIds"`
	TransactionsByBeneficiary map[string]model.Transaction `json:"transactionsByBeneficiary"`
	TopSender                 *string                      `json:"topSender"`
	TopSenderTotal            float64                      `json:"topSenderTotal"`
}

// DefaultReportOptions fills the options from the report section of the config.
func (s *Service) DefaultReportOptions() ReportOptions {
	return ReportOptions{
		SenderName:       s.Config.Report.Sender,
		ComplianceClient: s.Config.Report.Client,
		TopN:             s.Config.Report.Top,
	}
}

// Report runs every query against the snapshot. The queries only read the
// immutable snapshot, so they run concurrently and each writes its own field.
func (s *Service) Report(ctx context.Context, opts ReportOptions) (*Report, error) {
	if opts.TopN <= 0 {
		opts.TopN = constants.DefaultTopN
	}

	start := time.Now()
	q := s.Query
	r := &Report{
		RecordCount:      q.Len(),
		SenderName:       opts.SenderName,
		ComplianceClient: opts.ComplianceClient,
	}

	g, ctx := errgroup.WithContext(ctx)
	run := func(fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	run(func() { r.TotalAmount = q.TotalAmount() })
	run(func() { r.TotalAmountSentBy = q.TotalAmountSentBy(opts.SenderName) })
	run(func() { r.MaxAmount = q.MaxAmount() })
	run(func() { r.TopTransactions = q.TopByAmount(opts.TopN) })
	run(func() { r.UniqueClients = q.UniqueClientCount() })
	run(func() { r.HasOpenComplianceIssue = q.HasOpenComplianceIssue(opts.ComplianceClient) })
	run(func() { r.SolvedIssueMessages = q.AllSolvedIssueMessages() })
	run(func() { r.UnsolvedIssueIDs = q.UnsolvedIssueIDs() })
	run(func() { r.TransactionsByBeneficiary = q.TransactionsByBeneficiary() })
	run(func() {
		if name, ok := q.TopSender(); ok {
			r.TopSender = &name
			r.TopSenderTotal = q.TotalAmountSentBy(name)
		}
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("report built",
		"records", r.RecordCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return r, nil
}

// TopSenderLabel returns the top sender name or "None" for an empty snapshot.
func (r *Report) TopSenderLabel() string {
	if r.TopSender == nil {
		return constants.TopSenderNone
	}
	return *r.TopSender
}
