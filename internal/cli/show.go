package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sgraaf/geodesy"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <epsg-code>",
		Short: "Show one catalog entry by EPSG code",
		Long: `Show the full record behind an EPSG code. Ellipsoid codes print the
defining parameters and the derived shape values; datum codes print the
reference ellipsoid and the Helmert parameters toward WGS 84.`,
		Example: `  geodesy show 7030
  geodesy show 6326`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid EPSG code %q: %w", args[0], err)
			}

			if e, err := geodesy.LookupEllipsoid(code); err == nil {
				printEllipsoid(cmd.OutOrStdout(), e)
				return nil
			}
			d, err := geodesy.LookupDatum(code)
			if err != nil {
				return fmt.Errorf("EPSG:%d matches no built-in ellipsoid or datum: %w",
					code, geodesy.ErrNotFound)
			}
			printDatum(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func printEllipsoid(w io.Writer, e geodesy.Ellipsoid) {
	fmt.Fprintf(w, "Ellipsoid: %s\n", e.Name())
	fmt.Fprintf(w, "  EPSG code:        %d\n", e.Code())
	fmt.Fprintf(w, "  URN:              %s\n", e.URN())
	fmt.Fprintf(w, "  Semi-major axis:  %.6f m\n", e.A())
	fmt.Fprintf(w, "  Semi-minor axis:  %.6f m\n", e.B())
	fmt.Fprintf(w, "  Flattening:       %.12g (1/f = %.9f)\n", e.F(), 1/e.F())
	fmt.Fprintf(w, "  Eccentricity:     e=%.12g e2=%.12g ep2=%.12g\n", e.E(), e.E2(), e.Ep2())
	if r := e.Remarks(); r != "" {
		fmt.Fprintf(w, "  Remarks:          %s\n", r)
	}
}

func printDatum(w io.Writer, d geodesy.Datum) {
	fmt.Fprintf(w, "Datum: %s\n", d.Name())
	fmt.Fprintf(w, "  EPSG code:  %d\n", d.Code())
	fmt.Fprintf(w, "  URN:        %s\n", d.URN())
	fmt.Fprintf(w, "  Ellipsoid:  %s\n", d.Ellipsoid())
	if p, ok := d.ToWGS84(); ok {
		if p.IsIdentity() {
			fmt.Fprintln(w, "  ToWGS84:    identity")
		} else {
			fmt.Fprintf(w, "  ToWGS84:    %s\n", p)
		}
	} else {
		fmt.Fprintln(w, "  ToWGS84:    none published")
	}
	if r := d.Remarks(); r != "" {
		fmt.Fprintf(w, "  Remarks:    %s\n", r)
	}
}
