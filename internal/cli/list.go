package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sgraaf/geodesy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <ellipsoids|datums>",
		Short: "List the built-in catalog",
		Long:  `List the built-in reference ellipsoids or geodetic datums with their EPSG codes.`,
		Example: `  geodesy list ellipsoids
  geodesy list datums --remarks`,
		ValidArgs: []string{"ellipsoids", "datums"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			withRemarks, err := cmd.Flags().GetBool("remarks")
			if err != nil {
				return err
			}
			switch args[0] {
			case "ellipsoids":
				renderEllipsoids(cmd, withRemarks)
			case "datums":
				renderDatums(cmd, withRemarks)
			}
			return nil
		},
	}
	registerListFlags(cmd.Flags())
	return cmd
}

// registerListFlags binds the display flags shared by both catalog listings.
func registerListFlags(fs *pflag.FlagSet) {
	fs.Bool("remarks", false, "include the EPSG registry remarks column")
}

func renderEllipsoids(cmd *cobra.Command, withRemarks bool) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	header := table.Row{"EPSG", "Name", "a (m)", "1/f", "URN"}
	if withRemarks {
		header = append(header, "Remarks")
	}
	t.AppendHeader(header)

	for _, e := range geodesy.Ellipsoids() {
		row := table.Row{
			e.Code(),
			e.Name(),
			fmt.Sprintf("%.3f", e.A()),
			fmt.Sprintf("%.9f", 1/e.F()),
			e.URN(),
		}
		if withRemarks {
			row = append(row, e.Remarks())
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderDatums(cmd *cobra.Command, withRemarks bool) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	header := table.Row{"EPSG", "Name", "Ellipsoid", "ToWGS84", "URN"}
	if withRemarks {
		header = append(header, "Remarks")
	}
	t.AppendHeader(header)

	for _, d := range geodesy.Datums() {
		row := table.Row{
			d.Code(),
			d.Name(),
			d.Ellipsoid().Name(),
			formatToWGS84(d),
			d.URN(),
		}
		if withRemarks {
			row = append(row, d.Remarks())
		}
		t.AppendRow(row)
	}
	t.Render()
}

// formatToWGS84 renders the transform column: the seven parameters in
// towgs84 order, "identity" for an all-zero set, "-" when the datum
// carries none.
func formatToWGS84(d geodesy.Datum) string {
	p, ok := d.ToWGS84()
	if !ok {
		return "-"
	}
	if p.IsIdentity() {
		return "identity"
	}
	return fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v",
		p.Tx(), p.Ty(), p.Tz(), p.Rx(), p.Ry(), p.Rz(), p.S())
}
