// Package cli is the payrollctl command tree.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"payroll/internal/app"
	"payroll/internal/notify"
	"payroll/internal/platform/config"
	"payroll/internal/platform/logging"
	"payroll/internal/transport/http/shared"
)

type rootOptions struct {
	EnvFile string
	Yes     bool
	Stats   bool
	Quiet   bool
}

// runner holds what every subcommand needs once the root has wired the app.
type runner struct {
	opts  rootOptions
	app   *app.App
	in    *bufio.Reader
	out   io.Writer
	errw  io.Writer
	unsub func()

	// build replaces app.New in tests.
	build func(cfg config.Config, opts app.Options) (*app.App, error)
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&runner{build: app.New})
}

func newRootCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "payrollctl",
		Short:         "Operate the payroll platform from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			r.teardown()
		},
	}
	cmd.PersistentFlags().StringVar(&r.opts.EnvFile, "env-file", ".env", "dotenv file read before the environment")
	cmd.PersistentFlags().BoolVarP(&r.opts.Yes, "yes", "y", false, "answer yes to confirmation prompts")
	cmd.PersistentFlags().BoolVar(&r.opts.Stats, "stats", false, "print backend call metrics on exit")
	cmd.PersistentFlags().BoolVarP(&r.opts.Quiet, "quiet", "q", false, "do not print notifications")

	cmd.AddCommand(
		r.newOpenCmd(),
		r.newDashboardCmd(),
		r.newLoginCmd(),
		r.newLogoutCmd(),
		r.newWhoamiCmd(),
		r.newRegisterCmd(),
		r.newPasswordCmd(),
		r.newEmployeesCmd(),
		r.newVendorsCmd(),
		r.newSalaryCmd(),
		r.newPaymentsCmd(),
		r.newConcernsCmd(),
		r.newOrgsCmd(),
		r.newReportsCmd(),
	)
	return cmd
}

func (r *runner) setup(cmd *cobra.Command) error {
	r.in = bufio.NewReader(cmd.InOrStdin())
	r.out = cmd.OutOrStdout()
	r.errw = cmd.ErrOrStderr()

	cfg, err := config.Load(r.opts.EnvFile)
	if err != nil {
		return err
	}
	a, err := r.build(cfg, app.Options{
		Logger:  logging.New(cfg.LogLevel, r.errw),
		Confirm: shared.ConfirmFunc(r.confirm),
	})
	if err != nil {
		return err
	}
	r.app = a
	if !r.opts.Quiet {
		r.unsub = a.Alerts.Subscribe(r.printAlert)
	}
	return nil
}

func (r *runner) teardown() {
	if r.unsub != nil {
		r.unsub()
	}
	if r.opts.Stats && r.app != nil {
		s := r.app.Metrics.Snapshot()
		fmt.Fprintf(r.errw, "api calls: %d  failures: %d  unauthorized: %d  transport errors: %d  avg: %.1fms\n",
			s.RequestsTotal, s.FailuresTotal, s.UnauthorizedTotal, s.TransportErrors, s.AvgDurationMs)
	}
}

func (r *runner) printAlert(a notify.Alert) {
	fmt.Fprintf(r.errw, "[%s] %s\n", strings.ToUpper(string(a.Level)), a.Message)
}

func (r *runner) confirm(prompt string) bool {
	if r.opts.Yes {
		return true
	}
	answer, err := r.prompt(prompt + " [y/N]: ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// prompt writes label and reads one trimmed line.
func (r *runner) prompt(label string) (string, error) {
	fmt.Fprint(r.errw, label)
	line, err := r.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// value returns flag when set, otherwise prompts for it.
func (r *runner) value(flag, label string) (string, error) {
	if strings.TrimSpace(flag) != "" {
		return flag, nil
	}
	return r.prompt(label + ": ")
}

// show navigates to path and prints the resulting view.
func (r *runner) show(ctx context.Context, path string) error {
	page, err := r.app.Open(ctx, path)
	if err != nil {
		return err
	}
	if page.Path != pathOnly(path) {
		fmt.Fprintf(r.errw, "-> %s\n", page.Path)
	}
	_, err = io.WriteString(r.out, page.Body)
	return err
}

func pathOnly(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i]
	}
	return target
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
