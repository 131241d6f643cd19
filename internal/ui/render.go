package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"payroll/internal/transport/http/shared"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func title(w io.Writer, text string) {
	fmt.Fprintf(w, "%s\n%s\n\n", text, strings.Repeat("=", len(text)))
}

// table writes header and rows as aligned columns.
func table(w io.Writer, header []string, rows [][]string) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if len(rows) == 0 {
		fmt.Fprintln(tw, "(none)")
	}
	return tw.Flush()
}

type field struct {
	label string
	value string
}

func fields(w io.Writer, list ...field) error {
	tw := newTabWriter(w)
	for _, f := range list {
		value := f.value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(tw, "%s:\t%s\n", f.label, value)
	}
	return tw.Flush()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return money(d.Decimal)
}

func date(value string) string {
	return shared.FormatDate(value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// paginate returns the 1-based page of list.
func paginate[T any](list []T, page, size int) ([]T, int) {
	if size <= 0 {
		return list, 1
	}
	pages := (len(list) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], pages
}
