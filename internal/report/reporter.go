package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/thirdweb-dev/inspector/internal/common"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const timestampLayout = "2006-01-02 15:04:05"

// Reporter writes one line for the block header and one line per transaction outcome.
type Reporter struct {
	w      io.Writer
	format Format
}

func New(w io.Writer, format Format) (*Reporter, error) {
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
	return &Reporter{w: w, format: format}, nil
}

// Report writes the header followed by the outcomes in the order given.
func (r *Reporter) Report(header common.BlockHeader, outcomes []common.Outcome) error {
	if err := r.WriteHeader(header); err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if err := r.WriteOutcome(outcome); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) WriteHeader(header common.BlockHeader) error {
	if r.format == FormatJSON {
		return r.writeJSON(newBlockLine(header))
	}
	_, err := fmt.Fprintln(r.w, FormatHeader(header))
	return err
}

func (r *Reporter) WriteOutcome(outcome common.Outcome) error {
	if r.format == FormatJSON {
		if outcome.Skipped() {
			return r.writeJSON(newSkipLine(outcome))
		}
		return r.writeJSON(newTransactionLine(outcome.Record))
	}
	_, err := fmt.Fprintln(r.w, FormatOutcome(outcome))
	return err
}

func (r *Reporter) writeJSON(v interface{}) error {
	line, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal report line: %w", err)
	}
	_, err = fmt.Fprintln(r.w, string(line))
	return err
}

func FormatHeader(header common.BlockHeader) string {
	return fmt.Sprintf(
		"[%s] block num %s, parent %s, transactions: %d, gas used %s, gas limit %s, base fee %s, difficulty %s, total difficulty %s",
		header.Time().Format(timestampLayout),
		bigString(header.Number),
		header.ParentHash,
		header.TransactionCount,
		bigString(header.GasUsed),
		bigString(header.GasLimit),
		optionalBigString(header.BaseFeePerGas),
		bigString(header.Difficulty),
		optionalBigString(header.TotalDifficulty),
	)
}

func FormatOutcome(outcome common.Outcome) string {
	if outcome.Skipped() {
		return fmt.Sprintf("[%d] skipped: %s (tx %s)", outcome.Position, outcome.SkipReason, outcome.TransactionHash)
	}
	record := outcome.Record
	return fmt.Sprintf(
		"[%d] (%s -> %s) from %s, to %s, value %s, gas %d, gas price %s",
		record.TransactionIndex,
		record.TokenName,
		record.Signature(),
		record.FromAddress.Hex(),
		record.ToAddress.Hex(),
		formatValue(record.DisplayValue),
		record.Gas,
		bigString(record.GasPrice),
	)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func optionalBigString(v *big.Int) string {
	if v == nil {
		return "none"
	}
	return v.String()
}
