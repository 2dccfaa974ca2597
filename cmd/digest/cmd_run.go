package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"messdigest/internal/config"
	"messdigest/internal/digest"
	"messdigest/internal/logging"
	"messdigest/internal/mail"
	"messdigest/internal/perception"
	"messdigest/internal/pipeline"
	"messdigest/internal/sheets"
	"messdigest/internal/types"
)

// runDigest performs one pipeline run
func runDigest(cmd *cobra.Command, args []string) error {
	if err := appConfig.Validate(); err != nil {
		return err
	}
	loc, err := appConfig.Location()
	if err != nil {
		return err
	}
	today, err := resolveToday(runDate, loc, time.Now)
	if err != nil {
		return err
	}

	ctx := context.Background()
	registry := logging.NewRegistry(logger, loggingOptions(appConfig))
	registry.Get(logging.CategoryBoot).Info("starting run",
		zap.String("day", today.Format("2006-01-02")),
		zap.String("timezone", loc.String()),
		zap.String("provider", appConfig.LLM.Provider),
		zap.String("model", appConfig.LLM.Model),
	)

	runner, err := buildRunner(ctx, appConfig, registry, today)
	if err != nil {
		return err
	}

	outcome, runErr := runner.Run(ctx, today)
	return report(cmd.OutOrStdout(), outcome, runErr)
}

// buildRunner constructs every collaborator once from cfg.
func buildRunner(ctx context.Context, cfg *config.Config, registry *logging.Registry, today time.Time) (*pipeline.Runner, error) {
	source, err := sheets.NewSource(ctx, sheets.Config{
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		CredentialsFile: cfg.Sheets.CredentialsFile,
		Columns:         cfg.Sheets.Columns,
		Timeout:         cfg.GetSheetsTimeout(),
		Logger:          registry.Get(logging.CategorySheets),
	})
	if err != nil {
		return nil, err
	}

	client, err := perception.NewClientFromConfig(ctx, cfg, registry.Get(logging.CategoryPerception))
	if err != nil {
		return nil, err
	}
	summarizer := digest.NewSummarizer(client,
		digest.WithDay(today),
		digest.WithTimeout(cfg.GetLLMTimeout()),
		digest.WithLogger(registry.Get(logging.CategoryDigest)),
	)

	dispatcher := mail.NewDispatcher(newTransport(cfg), mail.DispatcherConfig{
		From:    cfg.Mail.Sender(),
		To:      cfg.Mail.To,
		Day:     today,
		Timeout: cfg.GetMailTimeout(),
		Logger:  registry.Get(logging.CategoryMail),
	})

	pipelineLogger := registry.Get(logging.CategoryPipeline)
	return pipeline.NewRunner(source, summarizer, dispatcher,
		pipeline.WithLogger(pipelineLogger),
		pipeline.WithFilterLogger(registry.Get(logging.CategoryIngest)),
		pipeline.WithObserver(pipeline.NewLogObserver(pipelineLogger)),
	), nil
}

func newTransport(cfg *config.Config) *mail.SMTPTransport {
	return mail.NewSMTPTransport(mail.SMTPConfig{
		Host:               cfg.Mail.Host,
		Port:               cfg.Mail.Port,
		Username:           cfg.Mail.Username,
		Password:           cfg.Mail.Password,
		InsecureSkipVerify: cfg.Mail.InsecureSkipVerify,
		Timeout:            cfg.GetMailTimeout(),
	})
}

// resolveToday returns the run day in loc: the --date value when given,
// otherwise the current time.
func resolveToday(date string, loc *time.Location, now func() time.Time) (time.Time, error) {
	if date == "" {
		return now().In(loc), nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", date, err)
	}
	return day, nil
}

// report prints the outcome and turns a fetch failure into the command error.
func report(out io.Writer, outcome types.RunOutcome, runErr error) error {
	fmt.Fprintf(out, "Run %s for %s: %s\n", outcome.RunID, outcome.Day.Format("2006-01-02"), outcome.State)
	fmt.Fprintf(out, "  Records:  %d\n", outcome.RecordCount)
	fmt.Fprintf(out, "  Delivery: %s\n", outcome.DeliveryStatus)
	if outcome.FailureReason != "" {
		fmt.Fprintf(out, "  Reason:   %s\n", outcome.FailureReason)
	}

	if runErr != nil {
		logger.Error("run failed", zap.String("run_id", outcome.RunID), zap.Error(runErr))
		return runErr
	}
	return nil
}
