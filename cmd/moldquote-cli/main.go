// moldquote-cli is the headless companion to the MoldQuote desktop
// application: it imports a part file, runs the same analysis and
// pricing engine, and prints or exports the resulting quote.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/MoldQuote/internal/analysis"
	"github.com/piwi3910/MoldQuote/internal/export"
	"github.com/piwi3910/MoldQuote/internal/geometry"
	"github.com/piwi3910/MoldQuote/internal/importer"
	"github.com/piwi3910/MoldQuote/internal/logging"
	"github.com/piwi3910/MoldQuote/internal/model"
)

var (
	flagDebug bool
	flagJSON  bool
)

func main() {
	root := &cobra.Command{
		Use:   "moldquote-cli",
		Short: "Injection mold quoting from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				logging.SetDebug()
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of text")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newQuoteCmd())
	root.AddCommand(newMaterialsCmd())
	root.AddCommand(newFinishesCmd())
	root.AddCommand(newBasesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <part-file>",
		Short: "Print geometry statistics and machinability analysis for a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.ImportCAD(args[0])
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				logging.Warn(w)
			}

			metrics := analysis.Complexity(result.Mesh, result.Stats)
			report := analysis.Manufacturing(result.Stats, metrics)

			if flagJSON {
				return printJSON(cmd, struct {
					Stats         geometry.Stats               `json:"stats"`
					Complexity    analysis.ComplexityMetrics   `json:"complexity"`
					Manufacturing analysis.ManufacturingReport `json:"manufacturing"`
				}{result.Stats, metrics, report})
			}

			size := result.Stats.BoundingBox.Size()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "File:\t%s\n", filepath.Base(args[0]))
			fmt.Fprintf(tw, "Triangles:\t%d\n", result.Stats.FaceCount)
			fmt.Fprintf(tw, "Volume:\t%.2f cm³\n", result.Stats.VolumeCm3())
			fmt.Fprintf(tw, "Surface area:\t%.2f cm²\n", result.Stats.AreaCm2())
			fmt.Fprintf(tw, "Bounding box:\t%.1f x %.1f x %.1f mm\n", size.X, size.Y, size.Z)
			fmt.Fprintf(tw, "Complexity:\t%.0f/100 (%s)\n", metrics.Score, metrics.Difficulty)
			fmt.Fprintf(tw, "Est. machining:\t%.1f h\n", report.EstimatedMachiningHours)
			fmt.Fprintf(tw, "Suggested material:\t%s\n", report.MaterialRecommendation)
			fmt.Fprintf(tw, "Suggested finish:\t%s\n", report.FinishRecommendation)
			return tw.Flush()
		},
	}
}

func newQuoteCmd() *cobra.Command {
	var (
		material   string
		finish     string
		quantity   int
		supplier   string
		plate      string
		hotRunner  bool
		conformal  bool
		doubleExtr bool
		insulation bool
		lifting    bool
		cnc3       float64
		cnc5       float64
		edm        float64
		aggr       float64
		margin     float64
		pdfOut     string
		xlsxOut    string
		dxfOut     string
	)

	cmd := &cobra.Command{
		Use:   "quote <part-file>",
		Short: "Compute a price quote for a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.ImportCAD(args[0])
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				logging.Warn(w)
			}

			// Mesh coordinates are millimeters; pricing works in cm³
			req := model.NewQuoteRequest(result.Stats.VolumeCm3())
			req.Material = material
			req.Finish = finish
			req.Quantity = quantity
			req.MoldBase = model.MoldBaseOptions{
				HotRunner:        hotRunner,
				ConformalCooling: conformal,
				DoubleExtraction: doubleExtr,
			}
			req.CADBase.Supplier = supplier
			req.CADBase.PlateMaterial = plate
			req.CADBase.InsulationPlates = insulation
			req.CADBase.LiftingHoles = lifting
			req.Rates = model.RateSettings{
				CNC3Axis:       cnc3,
				CNC5Axis:       cnc5,
				EDM:            edm,
				Aggressiveness: aggr,
				Margin:         margin,
			}

			quote, err := model.ComputeQuote(req)
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			report := export.NewQuoteReport(name, args[0], result.Mesh, result.Stats, req, quote)

			if pdfOut != "" {
				if err := export.ExportQuotePDF(pdfOut, report); err != nil {
					return err
				}
				logging.Info("wrote PDF quote", "path", pdfOut)
			}
			if xlsxOut != "" {
				if err := export.ExportQuoteExcel(xlsxOut, report); err != nil {
					return err
				}
				logging.Info("wrote Excel quote", "path", xlsxOut)
			}
			if dxfOut != "" {
				if err := export.ExportPlateDXF(dxfOut, result.Stats, export.DefaultPlateMargin); err != nil {
					return err
				}
				logging.Info("wrote plate DXF", "path", dxfOut)
			}

			if flagJSON {
				return printJSON(cmd, quote)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Part:\t%s (%.2f cm³)\n", name, req.Volume)
			fmt.Fprintf(tw, "Setup fee:\t%.2f EUR\n", quote.SetupFee)
			fmt.Fprintf(tw, "Mold base:\t%.2f EUR\n", quote.StructuralCost)
			fmt.Fprintf(tw, "Unit cost:\t%.2f EUR\n", quote.UnitCost)
			fmt.Fprintf(tw, "Quantity:\t%d (discount x %.2f)\n", quote.Quantity, quote.DiscountMultiplier)
			fmt.Fprintf(tw, "Total:\t%.2f EUR\n", quote.Total)
			fmt.Fprintf(tw, "Per piece:\t%.2f EUR\n", quote.PricePerPiece)
			fmt.Fprintf(tw, "Lead time:\t%d working days\n", quote.LeadTimeDays)
			return tw.Flush()
		},
	}

	defaults := model.NewQuoteRequest(0)
	cmd.Flags().StringVar(&material, "material", defaults.Material, "mold material ID")
	cmd.Flags().StringVar(&finish, "finish", defaults.Finish, "surface finish ID")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", defaults.Quantity, "production quantity")
	cmd.Flags().StringVar(&supplier, "supplier", defaults.CADBase.Supplier, "mold base supplier tier")
	cmd.Flags().StringVar(&plate, "plate", defaults.CADBase.PlateMaterial, "plate material")
	cmd.Flags().BoolVar(&hotRunner, "hot-runner", false, "add a hot runner system")
	cmd.Flags().BoolVar(&conformal, "conformal-cooling", false, "add conformal cooling channels")
	cmd.Flags().BoolVar(&doubleExtr, "double-extraction", false, "add double extraction")
	cmd.Flags().BoolVar(&insulation, "insulation", false, "add insulation plates")
	cmd.Flags().BoolVar(&lifting, "lifting-holes", false, "add lifting holes")
	cmd.Flags().Float64Var(&cnc3, "rate-cnc3", defaults.Rates.CNC3Axis, "3-axis CNC hourly rate (EUR/h)")
	cmd.Flags().Float64Var(&cnc5, "rate-cnc5", defaults.Rates.CNC5Axis, "5-axis CNC hourly rate (EUR/h)")
	cmd.Flags().Float64Var(&edm, "rate-edm", defaults.Rates.EDM, "EDM hourly rate (EUR/h)")
	cmd.Flags().Float64Var(&aggr, "aggressiveness", defaults.Rates.Aggressiveness, "quoting aggressiveness (0-1)")
	cmd.Flags().Float64Var(&margin, "margin", defaults.Rates.Margin, "material margin (0-0.3)")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "also write a PDF quote to this path")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "also write an Excel quote to this path")
	cmd.Flags().StringVar(&dxfOut, "dxf", "", "also write a plate layout DXF to this path")

	return cmd
}

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List available mold materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagJSON {
				return printJSON(cmd, model.Materials)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEUR/cm³\tHARDNESS")
			for _, m := range model.Materials {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", m.ID, m.Name, m.PricePerCm3, m.Hardness)
			}
			return tw.Flush()
		},
	}
}

func newFinishesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finishes",
		Short: "List available surface finishes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagJSON {
				return printJSON(cmd, model.Finishes)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tMULTIPLIER\tRa (µm)")
			for _, f := range model.Finishes {
				fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\n", f.ID, f.Name, f.Multiplier, f.Ra)
			}
			return tw.Flush()
		},
	}
}

func newBasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List mold base supplier tiers and plate materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagJSON {
				return printJSON(cmd, struct {
					Suppliers []model.MoldBaseSupplier `json:"suppliers"`
					Plates    []model.PlateMaterial    `json:"plates"`
				}{model.MoldBaseSuppliers, model.PlateMaterials})
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SUPPLIER\tSERIES\tBASE PRICE (EUR)")
			for _, s := range model.MoldBaseSuppliers {
				fmt.Fprintf(tw, "%s\t%s\t%.0f\n", s.Name, s.Series, s.BasePrice)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "PLATE MATERIAL\tADDON (EUR)")
			for _, p := range model.PlateMaterials {
				fmt.Fprintf(tw, "%s\t%+.0f\n", p.Name, p.Addon)
			}
			return tw.Flush()
		},
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
