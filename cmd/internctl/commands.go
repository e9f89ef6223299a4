package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Test-app01/sans-intern-verify/internal/adapter/postgres"
	"github.com/Test-app01/sans-intern-verify/internal/app"
	"github.com/Test-app01/sans-intern-verify/internal/certificate"
	authsvc "github.com/Test-app01/sans-intern-verify/internal/service/auth"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd.Context(), func(c *app.Container) error {
			return postgres.Migrate(cmd.Context(), c.Pool, c.Log)
		})
	},
}

var completeExpiredCmd = &cobra.Command{
	Use:   "complete-expired",
	Short: "Mark Active interns whose end date has passed as Completed",
	Long: `Mark Active interns whose end date is before today as Completed.

Intended to be invoked by an external scheduler, not as an in-process job.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd.Context(), func(c *app.Container) error {
			n, err := c.Interns.CompleteExpired(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			c.Log.Info("expired internships completed", slog.Int("updated", n))
			fmt.Fprintf(cmd.OutOrStdout(), "%d intern(s) marked Completed\n", n)
			return nil
		})
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a certificate PDF by certificate ID or verification code",
	RunE: func(cmd *cobra.Command, _ []string) error {
		code, _ := cmd.Flags().GetString("code")
		out, _ := cmd.Flags().GetString("out")

		return withContainer(cmd.Context(), func(c *app.Container) error {
			in, err := c.Verification.Lookup(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("lookup %s: %w", code, err)
			}

			doc, err := c.Renderer.Render(cmd.Context(), certificate.DataFromIntern(in))
			if err != nil {
				return err
			}
			if out == "" {
				out = doc.Filename
			}
			if err := os.WriteFile(out, doc.PDF, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(doc.PDF))
			return nil
		})
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for auth.admin_password_hash",
	Long: `Read a password from the first argument or, if absent, from the first
line of stdin, and print its bcrypt hash.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		hash, err := authsvc.HashPassword(password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	renderCmd.Flags().String("code", "", "certificate ID or verification code")
	renderCmd.Flags().String("out", "", "output file (default: <Name>_Certificate.pdf)")
	_ = renderCmd.MarkFlagRequired("code")
}
