package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/smallworld/txstats/internal/model"
)

// JSONSource reads a fixture file holding a JSON array of transactions.
type JSONSource struct {
	path string
}

func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

func (s *JSONSource) Path() string {
	return s.path
}

func (s *JSONSource) Transactions(ctx context.Context) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer f.Close()

	txs, err := DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return txs, nil
}

func (s *JSONSource) Close() error {
	return nil
}

// DecodeTransactions parses a JSON array of transaction objects. Every
// element must be an object; a bad element is reported with its index.
func DecodeTransactions(r io.Reader) ([]model.Transaction, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode transaction list: %w", err)
	}

	txs := make([]model.Transaction, 0, len(raw))
	for i, item := range raw {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("record %d: %w: expected an object", i, ErrMalformedRecord)
		}

		var tx model.Transaction
		if err := json.Unmarshal(trimmed, &tx); err != nil {
			return nil, fmt.Errorf("record %d: %w: %v", i, ErrMalformedRecord, err)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}
