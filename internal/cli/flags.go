package cli

import (
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"payroll/internal/transport/http/shared"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%q is not a valid id", raw)
	}
	return id, nil
}

func parseIDs(raw []string) ([]int64, error) {
	out := make([]int64, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			id, err := parseID(part)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		}
	}
	return out, nil
}

// amount parses a money flag; empty means zero.
func amount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &shared.ValidationError{Issues: []shared.ValidationIssue{{Field: field, Reason: "must be a number"}}}
	}
	return d, nil
}

// idArg is the usual single positional id.
func idArg(args []string) (int64, error) {
	return parseID(args[0])
}

var oneID = cobra.ExactArgs(1)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
