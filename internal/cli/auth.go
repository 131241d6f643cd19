package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"payroll/internal/domain/auth"
	"payroll/internal/platform/media"
)

type loginOptions struct {
	Email       string
	Password    string
	CaptchaFile string
}

func (r *runner) newLoginCmd() *cobra.Command {
	var opts loginOptions
	cmd := &cobra.Command{
		Use:   "login --email <email>",
		Short: "Sign in; the CAPTCHA image is saved to a file for you to read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			email, err := r.value(opts.Email, "Email")
			if err != nil {
				return err
			}
			password, err := r.value(opts.Password, "Password")
			if err != nil {
				return err
			}

			captcha, err := r.app.Auth.Captcha(ctx)
			if err != nil {
				return err
			}
			if err := auth.SaveCaptchaImage(captcha, opts.CaptchaFile); err != nil {
				return err
			}
			answer, err := r.prompt(fmt.Sprintf("CAPTCHA saved to %s, enter the characters: ", opts.CaptchaFile))
			if err != nil {
				return err
			}
			_ = os.Remove(opts.CaptchaFile)

			resp, landing, err := r.app.Auth.Login(ctx, auth.LoginRequest{
				Email:            email,
				Password:         password,
				CaptchaSessionID: captcha.SessionID,
				CaptchaAnswer:    answer,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "Signed in as %s (%s)\n", resp.Email, resp.Role)
			return r.show(ctx, landing)
		},
	}
	cmd.Flags().StringVar(&opts.Email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password (prompted when empty)")
	cmd.Flags().StringVar(&opts.CaptchaFile, "captcha-file", filepath.Join(os.TempDir(), "payrollctl-captcha.png"), "where to write the CAPTCHA image")
	return cmd
}

func (r *runner) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := r.app.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(r.out, "Signed out")
			return nil
		},
	}
}

func (r *runner) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and token expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := r.app.Session.User()
			if !ok {
				fmt.Fprintln(r.out, "Not signed in")
				return nil
			}
			fmt.Fprintf(r.out, "%s (%s, user %d)\n", user.Email, user.Role, user.UserID)
			if exp, ok := r.app.Session.ExpiresAt(); ok {
				fmt.Fprintf(r.out, "Token expires %s\n", exp.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

type registerOrgOptions struct {
	auth.OrganizationRegistration
	Document string
}

type registerEmployeeOptions struct {
	Email    string
	Password string
	Confirm  string
	ProofURL string
	Proof    string
}

func (r *runner) newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an organization or employee account",
	}

	var org registerOrgOptions
	orgCmd := &cobra.Command{
		Use:   "organization",
		Short: "Register an organization with its verification document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := media.OpenFile(org.Document)
			if err != nil {
				return err
			}
			if org.Password, err = r.value(org.Password, "Password"); err != nil {
				return err
			}
			_, landing, err := r.app.Auth.RegisterOrganization(cmd.Context(), org.OrganizationRegistration, doc)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), landing)
		},
	}
	f := orgCmd.Flags()
	f.StringVar(&org.Name, "name", "", "organization name")
	f.StringVar(&org.RegistrationNumber, "reg-no", "", "registration number")
	f.StringVar(&org.Email, "email", "", "login email")
	f.StringVar(&org.Password, "password", "", "password (prompted when empty)")
	f.StringVar(&org.Address, "address", "", "postal address")
	f.StringVar(&org.ContactPhone, "phone", "", "10 digit contact phone")
	f.StringVar(&org.Document, "document", "", "verification document (PDF or image)")
	_ = orgCmd.MarkFlagRequired("document")

	var emp registerEmployeeOptions
	empCmd := &cobra.Command{
		Use:   "employee",
		Short: "Complete an employee account with an identity proof",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var proof *media.File
			if emp.Proof != "" {
				f, err := media.OpenFile(emp.Proof)
				if err != nil {
					return err
				}
				proof = &f
			}
			var err error
			if emp.Password, err = r.value(emp.Password, "Password"); err != nil {
				return err
			}
			if emp.Confirm, err = r.value(emp.Confirm, "Confirm password"); err != nil {
				return err
			}
			landing, err := r.app.Auth.RegisterEmployee(cmd.Context(), auth.EmployeeRegistration{
				Email:            emp.Email,
				Password:         emp.Password,
				ConfirmPassword:  emp.Confirm,
				DocumentProofURL: emp.ProofURL,
			}, proof)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), landing)
		},
	}
	f = empCmd.Flags()
	f.StringVar(&emp.Email, "email", "", "email your organization registered")
	f.StringVar(&emp.Password, "password", "", "new password (prompted when empty)")
	f.StringVar(&emp.Confirm, "confirm-password", "", "password confirmation (prompted when empty)")
	f.StringVar(&emp.Proof, "proof", "", "identity proof to upload")
	f.StringVar(&emp.ProofURL, "proof-url", "", "already uploaded proof URL")

	cmd.AddCommand(orgCmd, empCmd)
	return cmd
}

func (r *runner) newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Reset a forgotten password",
	}

	var email string
	forgot := &cobra.Command{
		Use:   "forgot --email <email>",
		Short: "Send a reset OTP to the email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.app.Auth.StartPasswordReset().RequestOTP(cmd.Context(), email)
		},
	}
	forgot.Flags().StringVar(&email, "email", "", "account email")

	var otp, password, confirm string
	reset := &cobra.Command{
		Use:   "reset --email <email> --otp <code>",
		Short: "Set a new password using the emailed OTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow := r.app.Auth.StartPasswordReset()
			flow.Resume(email)
			code, err := r.value(otp, "OTP")
			if err != nil {
				return err
			}
			if err := flow.EnterOTP(code); err != nil {
				return err
			}
			if password, err = r.value(password, "New password"); err != nil {
				return err
			}
			if confirm, err = r.value(confirm, "Confirm password"); err != nil {
				return err
			}
			landing, err := flow.Reset(cmd.Context(), password, confirm)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), landing)
		},
	}
	reset.Flags().StringVar(&email, "email", "", "account email")
	reset.Flags().StringVar(&otp, "otp", "", "6 digit code from the email")
	reset.Flags().StringVar(&password, "password", "", "new password (prompted when empty)")
	reset.Flags().StringVar(&confirm, "confirm-password", "", "confirmation (prompted when empty)")

	cmd.AddCommand(forgot, reset)
	return cmd
}
