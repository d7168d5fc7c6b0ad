package cmd

import (
	"github.com/spf13/cobra"
)

// Login flags.
var (
	loginFlagName  string
	loginFlagEmail string
)

// loginCmd signs in a named user.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with a display name",
	Long: `Sign in with a display name. The session persists across commands
until you log out.

Examples:
  chronosdeck login --name "Dana"
  chronosdeck login --name "Dana" --email dana@example.com`,
	RunE: runLogin,
}

// logoutCmd signs the current user out.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE:  runLogout,
}

// whoamiCmd shows the signed-in user.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&loginFlagName, "name", "n", "", "Display name (required)")
	loginCmd.Flags().StringVarP(&loginFlagEmail, "email", "e", "", "Email address")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	principal, err := ctx.Session.SignIn(cmd.Context(), loginFlagName, loginFlagEmail)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(principal)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Signed in as " + principal.DisplayName)
	cli.Muted("  uid: " + principal.UID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx.Session.SignOut(cmd.Context())

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "signed out"})
	}
	ctx.CLIFormatter().Success("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	principal := ctx.Session.Current()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(principal)
	}

	cli := ctx.CLIFormatter()
	if !principal.Named() {
		cli.Muted("Not signed in.")
		return nil
	}
	cli.Printf("%s\n", cli.SubjectName(principal.DisplayName))
	cli.Muted("  uid: " + principal.UID)
	if principal.Email != "" {
		cli.Muted("  email: " + principal.Email)
	}
	return nil
}
