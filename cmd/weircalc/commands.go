package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"Bendung/internal/calc/crest"
	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/dropcheck"
	"Bendung/internal/calc/floor"
	"Bendung/internal/calc/gate"
	"Bendung/internal/calc/gravity"
	"Bendung/internal/calc/jump"
	"Bendung/internal/calc/report"
	"Bendung/internal/calc/seepage"
)

func (a *app) classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify the hydraulic jump at a basin entrance",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := jump.Input{Gravity: a.design.Gravity}
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			floatFlag(cmd, "flow", &in.FlowRate)
			floatFlag(cmd, "width", &in.Width)
			floatFlag(cmd, "depth", &in.ApproachDepth)
			res, err := jump.Classify(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().Float64("flow", 0, "flow rate Q (m3/s)")
	cmd.Flags().Float64("width", 0, "channel width B (m)")
	cmd.Flags().Float64("depth", 0, "approach depth y1 (m)")
	return cmd
}

func dropFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("flow", 0, "flow rate Q (m3/s)")
	cmd.Flags().Float64("width", 0, "channel width B (m)")
	cmd.Flags().Float64("height", 0, "total drop height (m)")
	cmd.Flags().Float64("max-stage", 0, "maximum height per stage (m)")
	cmd.Flags().Bool("cost-saving", false, "shorten intermediate basins when stages allow it")
}

func applyDropFlags(cmd *cobra.Command, in *drop.Input) {
	floatFlag(cmd, "flow", &in.FlowRate)
	floatFlag(cmd, "width", &in.Width)
	floatFlag(cmd, "height", &in.TotalHeight)
	floatFlag(cmd, "max-stage", &in.MaxHeightPerStage)
	if cmd.Flags().Changed("cost-saving") {
		in.CostSaving, _ = cmd.Flags().GetBool("cost-saving")
	}
}

func (a *app) designCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Design a multi-stage drop",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := drop.Input{Gravity: a.design.Gravity}
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			applyDropFlags(cmd, &in)
			res, err := drop.Design(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	dropFlags(cmd)
	return cmd
}

func (a *app) stabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stability",
		Short: "Check a stilling basin floor against uplift and bearing",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.design.Floor()
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			floatFlag(cmd, "basin-width", &in.BasinWidth)
			floatFlag(cmd, "basin-length", &in.BasinLength)
			floatFlag(cmd, "thickness", &in.FloorThickness)
			floatFlag(cmd, "y1", &in.ApproachDepth)
			floatFlag(cmd, "y2", &in.ConjugateDepth)
			floatFlag(cmd, "drop", &in.StageDropHeight)
			res, err := floor.Check(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().Float64("basin-width", 0, "basin width (m)")
	cmd.Flags().Float64("basin-length", 0, "basin length (m)")
	cmd.Flags().Float64("thickness", 0, "floor thickness (m)")
	cmd.Flags().Float64("y1", 0, "approach depth (m)")
	cmd.Flags().Float64("y2", 0, "conjugate depth (m)")
	cmd.Flags().Float64("drop", 0, "stage drop height (m)")
	return cmd
}

func (a *app) checkInput(cmd *cobra.Command) (dropcheck.Input, error) {
	in := a.design.DropCheck()
	if err := a.decode(cmd, &in); err != nil {
		return in, err
	}
	applyDropFlags(cmd, &in.Drop)
	floatFlag(cmd, "thickness", &in.FloorThickness)
	return in, nil
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Design a drop and check its final basin floor",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.checkInput(cmd)
			if err != nil {
				return err
			}
			res, err := dropcheck.Run(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	dropFlags(cmd)
	cmd.Flags().Float64("thickness", 0, "floor thickness (m)")
	return cmd
}

func (a *app) crestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crest",
		Short: "Effective crest width and energy head of a weir",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := crest.DefaultInput()
			in.Gravity = a.design.Gravity
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			res, err := crest.Calculate(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func (a *app) gateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate",
		Short: "Sluice gate opening for an intake",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := gate.DefaultInput()
			in.Gravity = a.design.Gravity
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			res, err := gate.Calculate(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func (a *app) seepageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seepage",
		Short: "Lane weighted creep check",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("soils"); list {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(seepage.Soils(), "\n"))
				return nil
			}
			var in seepage.Input
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			res, err := seepage.Calculate(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().Bool("soils", false, "list the soil classes of Lane's table")
	return cmd
}

func (a *app) gravityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gravity",
		Short: "Overturning, sliding and bearing checks of a gravity weir",
		RunE: func(cmd *cobra.Command, args []string) error {
			cond, _ := cmd.Flags().GetString("condition")
			in := gravity.DefaultInput(gravity.Condition(cond))
			if err := a.decode(cmd, &in); err != nil {
				return err
			}
			res, err := gravity.Calculate(in)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().String("condition", string(gravity.NormalWater), "load case: normal or flood")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a drop check report as PDF or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(out), ".")
			}
			var render func(io.Writer, dropcheck.Result, report.Meta) error
			switch format {
			case "pdf":
				render = report.PDF
			case "xlsx":
				render = report.XLSX
			default:
				return fmt.Errorf("unknown format %q: use pdf or xlsx", format)
			}

			in, err := a.checkInput(cmd)
			if err != nil {
				return err
			}
			res, err := dropcheck.Run(in)
			if err != nil {
				return err
			}
			title, _ := cmd.Flags().GetString("title")

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := render(f, res, report.Meta{Title: title}); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	dropFlags(cmd)
	cmd.Flags().Float64("thickness", 0, "floor thickness (m)")
	cmd.Flags().StringP("out", "o", "drop-report.pdf", "output file")
	cmd.Flags().String("format", "", "pdf or xlsx; taken from the file extension when empty")
	cmd.Flags().String("title", "", "report title")
	return cmd
}
