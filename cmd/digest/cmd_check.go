package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"messdigest/internal/config"
	"messdigest/internal/mail"
)

// runCheck validates the configuration and verifies the SMTP server
func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if err := appConfig.Validate(); err != nil {
		fmt.Fprintf(out, "Configuration: %v\n", err)
		return err
	}
	fmt.Fprintln(out, "Configuration: ok")

	return verifyMail(context.Background(), out, appConfig, newTransport(appConfig))
}

func verifyMail(ctx context.Context, out io.Writer, cfg *config.Config, transport mail.Transport) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.GetMailTimeout())
	defer cancel()

	if err := transport.Verify(ctx); err != nil {
		logger.Error("SMTP verification failed", zap.String("host", cfg.Mail.Host), zap.Error(err))
		fmt.Fprintf(out, "SMTP %s:%d: %v\n", cfg.Mail.Host, cfg.Mail.Port, err)
		return fmt.Errorf("SMTP verification failed: %w", err)
	}
	fmt.Fprintf(out, "SMTP %s:%d: ok\n", cfg.Mail.Host, cfg.Mail.Port)
	return nil
}
