package cli

import (
	"github.com/spf13/cobra"

	"riskeval/internal/risk"
)

// inputFlags binds the record form fields to a command's flag set.
// The three level flags distinguish "unset" from any value via
// Flags().Changed, preserving the explicit absent marker the validator
// expects.
type inputFlags struct {
	name        string
	area        string
	description string
	mitigations string
	nd          int
	ne          int
	nc          int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "hazard name (required)")
	cmd.Flags().StringVar(&f.area, "area", "", "work area (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "hazard description")
	cmd.Flags().StringVar(&f.mitigations, "mitigations", "", "preventive measures in place")
	cmd.Flags().IntVar(&f.nd, "nd", 0, "deficiency level (ND)")
	cmd.Flags().IntVar(&f.ne, "ne", 0, "exposure level (NE)")
	cmd.Flags().IntVar(&f.nc, "nc", 0, "consequence level (NC)")
}

// toInput converts the flags to raw input. Level flags the user never
// set become nil, not zero.
func (f *inputFlags) toInput(cmd *cobra.Command) risk.Input {
	in := risk.Input{
		Name:        f.name,
		Area:        f.area,
		Description: f.description,
		Mitigations: f.mitigations,
	}
	if cmd.Flags().Changed("nd") {
		v := f.nd
		in.Deficiency = &v
	}
	if cmd.Flags().Changed("ne") {
		v := f.ne
		in.Exposure = &v
	}
	if cmd.Flags().Changed("nc") {
		v := f.nc
		in.Consequence = &v
	}
	return in
}

// merge overlays only the flags the user set onto an existing record's
// input, so an edit keeps every field it does not mention.
func (f *inputFlags) merge(cmd *cobra.Command, base risk.Input) risk.Input {
	if cmd.Flags().Changed("name") {
		base.Name = f.name
	}
	if cmd.Flags().Changed("area") {
		base.Area = f.area
	}
	if cmd.Flags().Changed("description") {
		base.Description = f.description
	}
	if cmd.Flags().Changed("mitigations") {
		base.Mitigations = f.mitigations
	}
	if cmd.Flags().Changed("nd") {
		v := f.nd
		base.Deficiency = &v
	}
	if cmd.Flags().Changed("ne") {
		v := f.ne
		base.Exposure = &v
	}
	if cmd.Flags().Changed("nc") {
		v := f.nc
		base.Consequence = &v
	}
	return base
}
