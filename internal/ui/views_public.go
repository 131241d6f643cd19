package ui

import (
	"fmt"
	"io"
	"net/http"
)

func (v *views) login(w io.Writer, _ *http.Request) error {
	title(w, "Sign in")
	fmt.Fprintln(w, "Fetch a CAPTCHA and sign in:")
	fmt.Fprintln(w, "  payrollctl login --email <email>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "New here? payrollctl register organization | payrollctl register employee")
	fmt.Fprintln(w, "Forgot your password? payrollctl password forgot --email <email>")
	return nil
}

func (v *views) registerOrganization(w io.Writer, _ *http.Request) error {
	title(w, "Register organization")
	fmt.Fprintln(w, "Provide the organization details and a verification document (PDF or image):")
	fmt.Fprintln(w, "  payrollctl register organization --name <name> --reg-no <no> --email <email> \\")
	fmt.Fprintln(w, "    --phone <10 digits> --address <address> --document <file>")
	return nil
}

func (v *views) registerEmployee(w io.Writer, _ *http.Request) error {
	title(w, "Register employee")
	fmt.Fprintln(w, "Your organization must already have added you. Upload an identity proof:")
	fmt.Fprintln(w, "  payrollctl register employee --email <email> --proof <file>")
	fmt.Fprintln(w, "Passwords need 8+ characters with a digit, upper and lower case letters and one of @#$%^&+=.")
	return nil
}

func (v *views) forgotPassword(w io.Writer, _ *http.Request) error {
	title(w, "Reset password")
	fmt.Fprintln(w, "1. payrollctl password forgot --email <email>")
	fmt.Fprintln(w, "2. payrollctl password reset --email <email> --otp <6 digits>")
	return nil
}
