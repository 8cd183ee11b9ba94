// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ayoobkibrahim/portfolio-tui/internal/contact"
)

func newContactCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Get in touch",
		Long: `Shows the contact details. Use "contact mailto" for a ready-made mail link
or "contact send" to deliver a message through the hosted form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitle(out, "Contact")
			printField(out, "Email", p.ContactEmail())
			if p.Phone != "" {
				printField(out, "Phone", p.Phone)
				printField(out, "Call", contact.TelURL(p.Phone))
			}
			if p.Location != "" {
				printField(out, "Location", p.Location)
			}
			return nil
		},
	}
	cmd.AddCommand(newContactMailtoCmd(e), newContactSendCmd(e))
	return cmd
}

func newContactMailtoCmd(e *env) *cobra.Command {
	var subject, body string

	cmd := &cobra.Command{
		Use:   "mailto",
		Short: "Print a mailto: link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), contact.MailtoURL(p.ContactEmail(), subject, body))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "mail subject")
	cmd.Flags().StringVar(&body, "body", "", "mail body")
	return cmd
}

func newContactSendCmd(e *env) *cobra.Command {
	var form contact.Form

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message through the contact form",
		Long: `Validates and delivers a message through the configured form endpoint.
Every field is required. The endpoint access key comes from contact.access_key
or PORTFOLIO_CONTACT_ACCESS_KEY.

Example:
  portfolio contact send --name "Ada" --email ada@example.com \
    --subject "Hello" --message "Let's work together."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.profile()
			if err != nil {
				return err
			}

			form = form.Trimmed()
			if err := form.Validate(); err != nil {
				return err
			}

			client := e.contactClient()
			if !client.Configured() {
				return fmt.Errorf("%w; email %s instead", contact.ErrMissingAccessKey, p.ContactEmail())
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.ContactTimeout())
			defer cancel()

			err = client.Submit(ctx, form)
			status := contact.StatusFor(err)
			out := cmd.OutOrStdout()
			if err != nil {
				e.logger.Warn("contact submission failed",
					zap.String("endpoint", client.Endpoint()),
					zap.Bool("rate_limited", errors.Is(err, contact.ErrRateLimited)),
					zap.Error(err),
				)
				fmt.Fprintln(out, paint(out, ErrorStyle, status.Message))
				fmt.Fprintln(out, contact.MailtoURL(p.ContactEmail(), form.Subject, form.Message))
				return err
			}

			e.logger.Info("contact submission sent", zap.String("endpoint", client.Endpoint()))
			fmt.Fprintln(out, paint(out, SuccessStyle, status.Message))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "your name")
	f.StringVar(&form.Email, "email", "", "your email address")
	f.StringVar(&form.Subject, "subject", "", "message subject")
	f.StringVar(&form.Message, "message", "", "message body")
	return cmd
}
