package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MissingName stands in for a sender or beneficiary name that was null or
// absent in the source data. It is a regular key for grouping and counting.
const MissingName = "<missing>"

// Transaction is a single money transfer record. Values are treated as
// read-only once loaded.
type Transaction struct {
	MTN                 int64   `json:"mtn"`
	Amount              float64 `json:"amount"`
	SenderFullName      string  `json:"senderFullName"`
	SenderAge           int     `json:"senderAge"`
	BeneficiaryFullName string  `json:"beneficiaryFullName"`
	BeneficiaryAge      int     `json:"beneficiaryAge"`
	IssueID             *int    `json:"issueId"`
	IssueSolved         bool    `json:"issueSolved"`
	IssueMessage        *string `json:"issueMessage"`
}

// wireTransaction mirrors Transaction with nullable names so that a null
// name can be told apart from an empty one.
type wireTransaction struct {
	MTN                 int64   `json:"mtn"`
	Amount              float64 `json:"amount"`
	SenderFullName      *string `json:"senderFullName"`
	SenderAge           int     `json:"senderAge"`
	BeneficiaryFullName *string `json:"beneficiaryFullName"`
	BeneficiaryAge      int     `json:"beneficiaryAge"`
	IssueID             *int    `json:"issueId"`
	IssueSolved         bool    `json:"issueSolved"`
	IssueMessage        *string `json:"issueMessage"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var w wireTransaction
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*t = Transaction{
		MTN:                 w.MTN,
		Amount:              w.Amount,
		SenderFullName:      NameOrMissing(w.SenderFullName),
		SenderAge:           w.SenderAge,
		BeneficiaryFullName: NameOrMissing(w.BeneficiaryFullName),
		BeneficiaryAge:      w.BeneficiaryAge,
		IssueID:             w.IssueID,
		IssueSolved:         w.IssueSolved,
		IssueMessage:        w.IssueMessage,
	}
	return nil
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTransaction{
		MTN:                 t.MTN,
		Amount:              t.Amount,
		SenderFullName:      NullableName(t.SenderFullName),
		SenderAge:           t.SenderAge,
		BeneficiaryFullName: NullableName(t.BeneficiaryFullName),
		BeneficiaryAge:      t.BeneficiaryAge,
		IssueID:             t.IssueID,
		IssueSolved:         t.IssueSolved,
		IssueMessage:        t.IssueMessage,
	})
}

// HasIssue reports whether a compliance issue was raised on the transaction.
func (t Transaction) HasIssue() bool {
	return t.IssueID != nil
}

// HasOpenIssue reports whether the transaction carries an unsolved issue.
func (t Transaction) HasOpenIssue() bool {
	return t.IssueID != nil && !t.IssueSolved
}

// Involves reports whether name is the sender or the beneficiary.
func (t Transaction) Involves(name string) bool {
	return t.SenderFullName == name || t.BeneficiaryFullName == name
}

// Clone returns a copy that shares no memory with t.
func (t Transaction) Clone() Transaction {
	c := t
	if t.IssueID != nil {
		id := *t.IssueID
		c.IssueID = &id
	}
	if t.IssueMessage != nil {
		msg := *t.IssueMessage
		c.IssueMessage = &msg
	}
	return c
}

func (t Transaction) String() string {
	var b strings.Builder
	b.WriteString("Transaction mtn: ")
	b.WriteString(strconv.FormatInt(t.MTN, 10))
	b.WriteString(", amount: ")
	b.WriteString(formatFloat(t.Amount))
	b.WriteString(", senderFullName: ")
	b.WriteString(t.SenderFullName)
	b.WriteString(", senderAge: ")
	b.WriteString(strconv.Itoa(t.SenderAge))
	b.WriteString(", beneficiaryFullName: ")
	b.WriteString(t.BeneficiaryFullName)
	b.WriteString(", beneficiaryAge: ")
	b.WriteString(strconv.Itoa(t.BeneficiaryAge))
	b.WriteString(", issueId: ")
	if t.IssueID != nil {
		b.WriteString(strconv.Itoa(*t.IssueID))
	} else {
		b.WriteString("null")
	}
	b.WriteString(", issueSolved: ")
	b.WriteString(strconv.FormatBool(t.IssueSolved))
	b.WriteString(", issueMessage: ")
	b.WriteString(MessageOrNull(t.IssueMessage))
	return b.String()
}

// NameOrMissing maps a nullable name onto MissingName.
func NameOrMissing(name *string) string {
	if name == nil {
		return MissingName
	}
	return *name
}

// NullableName is the inverse of NameOrMissing.
func NullableName(name string) *string {
	if name == MissingName {
		return nil
	}
	return &name
}

// MessageOrNull renders an optional issue message.
func MessageOrNull(msg *string) string {
	if msg == nil {
		return "null"
	}
	return *msg
}

// formatFloat always keeps one fractional digit, so 500 renders as 500.0.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
