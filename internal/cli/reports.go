package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"payroll/internal/domain/reports"
)

func (r *runner) newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate and download organization reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.show(cmd.Context(), "/organization/reports")
		},
	}

	employeesCmd := &cobra.Command{
		Use:   "employees",
		Short: "Employee list workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("download")
			if dir != "" {
				path, err := r.app.Services.Reports.DownloadEmployeeList(cmd.Context(), dir)
				if err != nil {
					return err
				}
				fmt.Fprintln(r.out, path)
				return nil
			}
			report, err := r.app.Services.Reports.GenerateEmployeeList(cmd.Context())
			if err != nil {
				return err
			}
			return printReport(r, report)
		},
	}
	employeesCmd.Flags().String("download", "", "save the workbook into this directory")

	salaryCmd := &cobra.Command{
		Use:   "salary --month <MONTH> --year <YEAR>",
		Short: "Monthly salary report as Excel or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			month, _ := cmd.Flags().GetString("month")
			year, _ := cmd.Flags().GetInt("year")
			dir, _ := cmd.Flags().GetString("download")
			period := reports.Period{Month: strings.ToUpper(month), Year: year}
			f := reports.Format(strings.ToLower(format))

			if dir != "" {
				path, err := r.app.Services.Reports.DownloadSalaryReport(cmd.Context(), f, period, dir)
				if err != nil {
					return err
				}
				fmt.Fprintln(r.out, path)
				return nil
			}
			report, err := r.app.Services.Reports.GenerateSalaryReport(cmd.Context(), f, period)
			if err != nil {
				return err
			}
			return printReport(r, report)
		},
	}
	salaryCmd.Flags().String("format", string(reports.FormatExcel), "excel or pdf")
	salaryCmd.Flags().String("month", "", "JANUARY..DECEMBER")
	salaryCmd.Flags().Int("year", 0, "report year")
	salaryCmd.Flags().String("download", "", "save the file into this directory")

	cmd.AddCommand(employeesCmd, salaryCmd)
	return cmd
}

func printReport(r *runner, report reports.Report) error {
	tw := newTable(r.out)
	fmt.Fprintf(tw, "File:\t%s\n", report.FileName)
	fmt.Fprintf(tw, "URL:\t%s\n", report.ReportURL)
	if report.Month != "" {
		fmt.Fprintf(tw, "Period:\t%s %s\n", report.Month, report.Year)
	}
	return tw.Flush()
}
