// Package main provides the CLI entry point for the accounting assistant:
// batch invoice extraction and per-company account classification.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cimax123/asistente-contable/internal/classify"
	"github.com/cimax123/asistente-contable/internal/common"
	"github.com/cimax123/asistente-contable/internal/pipeline"
	"github.com/cimax123/asistente-contable/internal/repository"
	"github.com/cimax123/asistente-contable/internal/xlsx"
)

var (
	extractDir string
	extractOut string

	companyFile string
	classifyIn  string
	classifyCol string
	classifyOut string

	correctCompany string
	correctDesc    string
	correctAccount string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contable",
		Short: "Accounting-document assistant",
		Long: `contable extracts header and line-item fields from loosely formatted
xlsx invoices and suggests account categories for transaction descriptions.`,
		SilenceUsage: true,
	}

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract invoice fields from every xlsx document in a directory",
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVar(&extractDir, "dir", "", "directory of invoice documents (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output workbook path (default: <dir>/../registros.xlsx)")
	_ = extractCmd.MarkFlagRequired("dir")

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "Suggest an account for each row of a transactions workbook",
		RunE:  runClassify,
	}
	classifyCmd.Flags().StringVar(&companyFile, "company", "", "company training workbook (required)")
	classifyCmd.Flags().StringVar(&classifyIn, "in", "", "workbook to classify (required)")
	classifyCmd.Flags().StringVar(&classifyCol, "column", "", "name of the description column (required)")
	classifyCmd.Flags().StringVarP(&classifyOut, "out", "o", "", "output workbook path (default: resultado_<in>)")
	_ = classifyCmd.MarkFlagRequired("company")
	_ = classifyCmd.MarkFlagRequired("in")
	_ = classifyCmd.MarkFlagRequired("column")

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train a company model and report what it learned",
		RunE:  runTrain,
	}
	trainCmd.Flags().StringVar(&companyFile, "company", "", "company training workbook (required)")
	_ = trainCmd.MarkFlagRequired("company")

	correctCmd := &cobra.Command{
		Use:   "correct",
		Short: "Record a corrected account for a description",
		RunE:  runCorrect,
	}
	correctCmd.Flags().StringVar(&correctCompany, "company", "", "company name (required)")
	correctCmd.Flags().StringVar(&correctDesc, "description", "", "transaction description (required)")
	correctCmd.Flags().StringVar(&correctAccount, "account", "", "correct account name (required)")
	_ = correctCmd.MarkFlagRequired("company")
	_ = correctCmd.MarkFlagRequired("description")
	_ = correctCmd.MarkFlagRequired("account")

	rootCmd.AddCommand(extractCmd, classifyCmd, trainCmd, correctCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := common.LoadConfig()
	logger := cfg.NewLogger()

	if extractOut == "" {
		extractOut = filepath.Join(filepath.Dir(extractDir), "registros.xlsx")
	}

	paths, err := pipeline.DiscoverDocuments(extractDir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", extractDir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no xlsx documents under %s", extractDir)
	}

	proc := pipeline.NewProcessor(logger)
	records, docErrs := proc.Process(cmd.Context(), paths)
	for _, de := range docErrs {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", de.Path, de.Err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no document could be processed")
	}

	if err := xlsx.WriteRecords(extractOut, records); err != nil {
		return err
	}
	fmt.Printf("wrote %d records from %d documents to %s\n",
		len(records), len(paths)-len(docErrs), extractOut)
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := common.LoadConfig()
	logger := cfg.NewLogger()
	ctx := cmd.Context()

	model, err := trainModel(ctx, cfg, logger)
	if err != nil {
		return err
	}

	descriptions, err := xlsx.ReadColumn(classifyIn, classifyCol)
	if err != nil {
		return err
	}
	lowered := make([]string, len(descriptions))
	for i, d := range descriptions {
		lowered[i] = strings.ToLower(d)
	}
	labels := model.Predict(lowered)

	if classifyOut == "" {
		classifyOut = filepath.Join(filepath.Dir(classifyIn), "resultado_"+filepath.Base(classifyIn))
	}
	if err := xlsx.WriteClassified(classifyIn, classifyOut, "cuenta_sugerida", labels); err != nil {
		return err
	}
	fmt.Printf("classified %d rows to %s\n", len(labels), classifyOut)
	return nil
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := common.LoadConfig()
	logger := cfg.NewLogger()

	model, err := trainModel(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	fmt.Printf("model trained with %d accounts:\n", len(model.Labels()))
	for _, label := range model.Labels() {
		fmt.Printf("  %s\n", label)
	}
	return nil
}

func runCorrect(cmd *cobra.Command, args []string) error {
	cfg := common.LoadConfig()
	logger := cfg.NewLogger()
	ctx := cmd.Context()

	db, err := repository.Open(ctx, cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewCorrectionRepository(db, logger)
	c, err := repo.Add(ctx, correctCompany, correctDesc, correctAccount)
	if err != nil {
		return err
	}
	fmt.Printf("correction %s stored for %s\n", c.ID, c.Company)
	return nil
}

// trainModel wires the corrections store into the training run. The
// company key for corrections is the workbook name without extension.
func trainModel(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*classify.Model, error) {
	db, err := repository.Open(ctx, cfg.Database.Path, logger)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	company := strings.TrimSuffix(filepath.Base(companyFile), filepath.Ext(companyFile))
	svc := classify.NewService(repository.NewCorrectionRepository(db, logger), logger)
	return svc.TrainForCompany(ctx, company, companyFile)
}
