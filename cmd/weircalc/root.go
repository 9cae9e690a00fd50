package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"Bendung/internal/config"
)

type app struct {
	defaultsFile string
	inputFile    string
	design       config.Design
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "weircalc",
		Short: "Hydraulic design checks for weirs and multi-stage drops.",
		Long: `Hydraulic design checks for weirs and multi-stage drops.
Every command prints its result as JSON. Inputs may be given as flags or as
a JSON document via --input (use - for stdin); flags override the document.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.design, err = config.LoadDesign(a.defaultsFile)
			return err
		},
	}
	root.PersistentFlags().StringVar(&a.defaultsFile, "defaults", "", "TOML file with design defaults")
	root.PersistentFlags().StringVar(&a.inputFile, "input", "", "JSON input document, - for stdin")

	root.AddCommand(
		a.classifyCmd(),
		a.designCmd(),
		a.stabilityCmd(),
		a.checkCmd(),
		a.crestCmd(),
		a.gateCmd(),
		a.seepageCmd(),
		a.gravityCmd(),
		a.exportCmd(),
	)
	return root
}

// decode reads the --input document over v. Without --input v is unchanged.
func (a *app) decode(cmd *cobra.Command, v interface{}) error {
	if a.inputFile == "" {
		return nil
	}
	var r io.Reader = cmd.InOrStdin()
	if a.inputFile != "-" {
		f, err := os.Open(a.inputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("reading %s: %w", a.inputFile, err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// floatFlag copies a flag into dst only when the user set it.
func floatFlag(cmd *cobra.Command, name string, dst *float64) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetFloat64(name)
	}
}
