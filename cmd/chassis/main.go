package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chassis-vm/chassis/internal/loader"
	"github.com/chassis-vm/chassis/internal/machine"
	"github.com/chassis-vm/chassis/internal/vbox"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	flagVBoxManage string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chassis",
	Short: "Chassis - declarative VirtualBox machine configuration",
	Long: `Chassis applies declarative YAML hardware configuration to registered
VirtualBox machines: storage controllers and their media, network adapters,
and generic machine properties.

Chassis never creates, starts, or stops machines; it only configures
machines that already exist and are not running.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVBoxManage, "vbm", vbox.DefaultPath(), "path to the VBoxManage utility")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every VBoxManage invocation")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(seedCmd)
}

func newRunner() *vbox.CommandRunner {
	return &vbox.CommandRunner{Path: flagVBoxManage, Verbose: flagVerbose}
}

var applyCmd = &cobra.Command{
	Use:   "apply <config.yaml>",
	Short: "Apply a machine configuration",
	Long: `Apply a YAML machine configuration to the registered machine named by
the resource's metadata.name.

Application runs in two steps: machine properties and network adapters
first, then storage controllers and media. Application is fail-fast without
rollback; mutations made before a failure stay in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loader.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		runner := newRunner()
		m, err := vbox.OpenMachine(cfg.Name, runner)
		if err != nil {
			return err
		}

		applier := machine.NewApplier(
			vbox.Enums{},
			vbox.MediumResolver{},
			vbox.NewSystemProperties(runner),
			vbox.DefaultSetters(runner),
		)

		fmt.Printf("Applying configuration to machine '%s'...\n", cfg.Name)
		if err := applier.ConfigureMachine(m, &cfg.Spec); err != nil {
			return err
		}
		if err := applier.AttachStorage(m, &cfg.Spec); err != nil {
			return err
		}

		fmt.Printf("Machine '%s' configured successfully\n", cfg.Name)
		return nil
	},
}
