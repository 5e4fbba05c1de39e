// Package main provides the groupdesign CLI.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"groupdesign"
	"groupdesign/modelfile"
)

var rootCmd = &cobra.Command{
	Use:   "groupdesign",
	Short: "Build group-level GLM designs and contrasts from covariate tables",
	Long: `groupdesign expands a covariate spreadsheet and a declarative model file
into a numeric design matrix and its hypothesis contrasts, ready for a
general-linear-model fitter.`,
}

var (
	spreadsheetPath string
	modelPath       string
	outputPath      string
	verbose         bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Build the design matrix and contrasts",
	RunE:  runDesign,
}

func init() {
	designCmd.Flags().StringVar(&spreadsheetPath, "spreadsheet", "", "covariate table (.tsv/.txt tab-separated, otherwise comma-separated)")
	designCmd.Flags().StringVar(&modelPath, "model", "", "YAML model file with variables, contrasts and optional subjects")
	designCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write JSON output to file instead of stdout")
	designCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the collinearity report and warnings to stderr")
	_ = designCmd.MarkFlagRequired("spreadsheet")
	_ = designCmd.MarkFlagRequired("model")

	rootCmd.AddCommand(designCmd)
}

func runDesign(cmd *cobra.Command, args []string) error {
	mf, err := modelfile.Load(modelPath)
	if err != nil {
		return err
	}

	idColumn, ok := mf.IDColumn()
	if !ok {
		// Load validates this; keep the guard for direct File construction.
		return fmt.Errorf("model file declares no id variable")
	}

	raw, fileOrder, err := modelfile.LoadTable(spreadsheetPath, idColumn)
	if err != nil {
		return err
	}

	subjects := mf.Subjects
	if len(subjects) == 0 {
		subjects = fileOrder
	}

	opts := groupdesign.DefaultOptions()
	if verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	res, err := groupdesign.GroupDesign(raw, mf.Variables, mf.Contrasts, subjects, &opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(data)

		return err
	}

	return os.WriteFile(outputPath, data, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
