package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chassis-vm/chassis/internal/hardware"
	"github.com/chassis-vm/chassis/internal/loader"
	"github.com/chassis-vm/chassis/internal/output"
)

var (
	planOutputFormat string
	planNoHeaders    bool
)

func init() {
	planCmd.Flags().StringVarP(&planOutputFormat, "output", "o", "table", "output format (table, yaml, json)")
	planCmd.Flags().BoolVar(&planNoHeaders, "no-headers", false, "omit headers in table output")
}

var planCmd = &cobra.Command{
	Use:   "plan <config.yaml>",
	Short: "Show the storage placement a configuration would apply",
	Long: `Plan validates a configuration's storage section and prints the
port/device coordinate every medium would be attached at, without touching
VirtualBox. A configuration that plans cleanly will pass the same
validation at apply time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := output.ValidateFormat(planOutputFormat); err != nil {
			return err
		}

		cfg, err := loader.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		plan, err := hardware.BuildPlan(cfg)
		if err != nil {
			return fmt.Errorf("placement failed: %w", err)
		}

		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(planOutputFormat),
			NoHeaders: planNoHeaders,
		})
		if err != nil {
			return err
		}

		text, err := formatter.FormatPlan(plan)
		if err != nil {
			return err
		}

		fmt.Print(text)
		return nil
	},
}
