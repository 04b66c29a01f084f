package query

import (
	"sort"

	"github.com/smallworld/txstats/internal/model"
)

// Engine answers the fixed set of analytical queries over a snapshot of
// transactions. The snapshot is captured at construction and never changes,
// so an Engine can be shared between goroutines without locking.
type Engine struct {
	txs []model.Transaction
}

// New copies txs into an Engine-owned snapshot. Input order is preserved.
func New(txs []model.Transaction) *Engine {
	snapshot := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		snapshot[i] = tx.Clone()
	}
	return &Engine{txs: snapshot}
}

// Len returns the number of records in the snapshot.
func (e *Engine) Len() int {
	return len(e.txs)
}

// Transactions returns a copy of the snapshot in input order.
func (e *Engine) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(e.txs))
	for i, tx := range e.txs {
		out[i] = tx.Clone()
	}
	return out
}

// TotalAmount returns the sum of all amounts, 0 for an empty snapshot.
func (e *Engine) TotalAmount() float64 {
	var total float64
	for _, tx := range e.txs {
		total += tx.Amount
	}
	return total
}

// TotalAmountSentBy sums the amounts of transactions whose sender exactly
// matches senderName.
func (e *Engine) TotalAmountSentBy(senderName string) float64 {
	var total float64
	for _, tx := range e.txs {
		if tx.SenderFullName == senderName {
			total += tx.Amount
		}
	}
	return total
}

// MaxAmount returns the highest amount, or 0 when the snapshot is empty.
func (e *Engine) MaxAmount() float64 {
	if len(e.txs) == 0 {
		return 0
	}

	highest := e.txs[0].Amount
	for _, tx := range e.txs[1:] {
		if tx.Amount > highest {
			highest = tx.Amount
		}
	}
	return highest
}

// UniqueClientCount counts distinct names seen as sender or beneficiary.
func (e *Engine) UniqueClientCount() int {
	return len(e.clientSet())
}

// Clients returns the distinct sender and beneficiary names, sorted.
func (e *Engine) Clients() []string {
	set := e.clientSet()

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) clientSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.txs))
	for _, tx := range e.txs {
		set[tx.SenderFullName] = struct{}{}
		set[tx.BeneficiaryFullName] = struct{}{}
	}
	return set
}

// HasOpenComplianceIssue reports whether clientName, as sender or
// beneficiary, has at least one transaction with an unsolved issue.
func (e *Engine) HasOpenComplianceIssue(clientName string) bool {
	for _, tx := range e.txs {
		if tx.Involves(clientName) && tx.HasOpenIssue() {
			return true
		}
	}
	return false
}

// TransactionsByBeneficiary indexes transactions by beneficiary name. When a
// beneficiary appears more than once the last transaction in input order wins.
func (e *Engine) TransactionsByBeneficiary() map[string]model.Transaction {
	index := make(map[string]model.Transaction)
	for _, tx := range e.txs {
		index[tx.BeneficiaryFullName] = tx.Clone()
	}
	return index
}

// UnsolvedIssueIDs returns the distinct ids of issues that are still open,
// in ascending order.
func (e *Engine) UnsolvedIssueIDs() []int {
	seen := make(map[int]struct{})
	ids := make([]int, 0)
	for _, tx := range e.txs {
		if !tx.HasOpenIssue() {
			continue
		}
		if _, ok := seen[*tx.IssueID]; ok {
			continue
		}
		seen[*tx.IssueID] = struct{}{}
		ids = append(ids, *tx.IssueID)
	}
	sort.Ints(ids)
	return ids
}

// AllSolvedIssueMessages returns, in input order, the issue message of every
// transaction flagged as solved. Only the solved flag is checked: a record
// marked solved without an issue id still contributes its (possibly nil)
// message.
func (e *Engine) AllSolvedIssueMessages() []*string {
	messages := make([]*string, 0)
	for _, tx := range e.txs {
		if !tx.IssueSolved {
			continue
		}
		var msg *string
		if tx.IssueMessage != nil {
			m := *tx.IssueMessage
			msg = &m
		}
		messages = append(messages, msg)
	}
	return messages
}

// Top3ByAmount returns the three largest transactions, highest first.
func (e *Engine) Top3ByAmount() []model.Transaction {
	return e.TopByAmount(3)
}

// TopByAmount returns up to n transactions sorted by amount descending.
// Equal amounts keep their input order.
func (e *Engine) TopByAmount(n int) []model.Transaction {
	if n <= 0 {
		return []model.Transaction{}
	}

	sorted := e.Transactions()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopSender returns the sender with the largest summed amount. On a tie the
// sender encountered first in input order wins. ok is false only for an
// empty snapshot.
func (e *Engine) TopSender() (name string, ok bool) {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, tx := range e.txs {
		if _, seen := totals[tx.SenderFullName]; !seen {
			order = append(order, tx.SenderFullName)
		}
		totals[tx.SenderFullName] += tx.Amount
	}

	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, sender := range order[1:] {
		if totals[sender] > totals[best] {
			best = sender
		}
	}
	return best, true
}
