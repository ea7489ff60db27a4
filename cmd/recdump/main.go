// Command recdump prints the records packed in a binary file as a table.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-recarray/recarray"
)

var (
	format string
	count  int
	endian string
	limit  int
)

func main() {
	cmd := &cobra.Command{
		Use:   "recdump <file>",
		Short: "dump packed binary records as a table",
		Long: `recdump interprets a binary file as an array of packed records and
prints one row per record. The record format uses the same grammar as
the recarray package: an optional endian tag ('=', '<', '>', '!')
followed by comma-separated field codes such as i32, f64, s16.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd, args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&format, "format", "f", "c", "record format string")
	cmd.Flags().IntVarP(&count, "count", "c", -1, "number of records to read (-1 for the whole file)")
	cmd.Flags().StringVarP(&endian, "endian", "e", "", "convert records to this byte order ('<', '>', '=', '!') before printing")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most this many records (0 for all)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func dump(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	opts := []recarray.Option{recarray.WithFormat(format)}
	if count >= 0 {
		opts = append(opts, recarray.WithCount(count))
	}
	r, err := recarray.FromBytes(data, opts...)
	if err != nil {
		return err
	}
	if endian != "" {
		if len(endian) != 1 {
			return fmt.Errorf("unknown endian type %q", endian)
		}
		if r, err = r.Copy(recarray.Endian(endian[0])); err != nil {
			return err
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(header(r))

	n := r.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	rows := r.Value().([]any)
	for i := 0; i < n; i++ {
		row := make(table.Row, 0, r.NumFields()+1)
		row = append(row, i)
		for _, v := range rows[i].(recarray.Tuple) {
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	t.Render()

	if n < r.Len() {
		fmt.Fprintf(cmd.OutOrStdout(), "(%d of %d records)\n", n, r.Len())
	}
	return nil
}

// header labels each column with its field code, e.g. "0:i32".
func header(r *recarray.Record) table.Row {
	f := r.Format()
	if len(f) > 0 {
		switch f[0] {
		case '=', '<', '>', '!':
			f = f[1:]
		}
	}
	codes := strings.Split(f, ",")
	row := make(table.Row, 0, len(codes)+1)
	row = append(row, "#")
	for i, c := range codes {
		row = append(row, fmt.Sprintf("%d:%s", i, c))
	}
	return row
}
