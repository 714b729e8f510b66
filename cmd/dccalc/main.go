package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"district_cooling_calc/chiller"
	"district_cooling_calc/costdb"
	"district_cooling_calc/internal/config"
	"district_cooling_calc/internal/logger"
	"district_cooling_calc/profile"
)

type opts struct {
	configFile string

	// operation
	mdot_kgpers float64
	t_sup_K     float64
	t_re_K      float64

	// cost
	q_peak_W   float64
	technology string

	// annual
	demandFile string
}

func main() {
	defer logger.Close()

	var o opts

	root := &cobra.Command{
		Use:   "dccalc",
		Short: "Vapor-compression chiller calculations for district cooling networks",
		Long: `dccalc computes the operating point and the annualized investment cost
of a vapor-compression chiller supplying a district cooling network.

The operating point follows the empirical COP correlation of
[D.J. Swider, 2003]; investment costs are read from a region-specific
supply-systems cost database and annualized with the capital recovery
factor.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&o.configFile, "config", "c", "", "config file pathname (YAML)")

	operation := &cobra.Command{
		Use:   "operation",
		Short: "Compute electric power draw and condenser heat rejection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(o)
		},
	}
	operation.Flags().Float64Var(&o.mdot_kgpers, "mdot", 0, "supply mass flow rate to the network, kg/s")
	operation.Flags().Float64Var(&o.t_sup_K, "t-sup", 0, "supply temperature to the network, K")
	operation.Flags().Float64Var(&o.t_re_K, "t-re", 0, "return temperature from the network, K")

	cost := &cobra.Command{
		Use:   "cost",
		Short: "Compute annualized capital and fixed O&M cost for a peak load",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCost(o)
		},
	}
	cost.Flags().Float64Var(&o.q_peak_W, "q-peak", 0, "peak cooling demand, W")
	cost.Flags().StringVar(&o.technology, "technology", "", "technology code in the cost database (overrides config)")

	annual := &cobra.Command{
		Use:   "annual",
		Short: "Simulate an hourly demand profile and cost the resulting peak load",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnual(o)
		},
	}
	annual.Flags().StringVar(&o.demandFile, "demand", "", "hourly demand profile CSV (overrides config)")
	annual.Flags().StringVar(&o.technology, "technology", "", "technology code in the cost database (overrides config)")

	root.AddCommand(operation, cost, annual)

	if err := root.Execute(); err != nil {
		logger.L().Error(err)
		os.Exit(1)
	}
}

func runOperation(o opts) error {
	if o.mdot_kgpers != 0 && o.t_re_K <= o.t_sup_K {
		return fmt.Errorf("return temperature %g K must exceed supply temperature %g K", o.t_re_K, o.t_sup_K)
	}

	op := chiller.CalcVCC(o.mdot_kgpers, o.t_sup_K, o.t_re_K)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "wdot (W)\t%.3f\n", op.Wdot_W)
	fmt.Fprintf(tw, "q_cw (W)\t%.3f\n", op.Qcw_W)
	return tw.Flush()
}

func runCost(o opts) error {
	db, code, err := loadDatabase(o)
	if err != nil {
		return err
	}

	costs, err := chiller.CalcInvestmentCost(o.q_peak_W, db, code)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "capex_a (currency/a)\t%.3f\n", costs.CapexAnnual)
	fmt.Fprintf(tw, "opex_fixed (currency/a)\t%.3f\n", costs.OpexFixed)
	return tw.Flush()
}

func runAnnual(o opts) error {
	cfg, err := config.Get(o.configFile)
	if err != nil {
		return err
	}

	demandFile := o.demandFile
	if demandFile == "" {
		demandFile = cfg.DemandFile
	}
	if demandFile == "" {
		return fmt.Errorf("no demand profile given (use --demand or the `demand_file` config key)")
	}

	logger.L().Infof("Load demand profile from `%s`", demandFile)
	demand, err := profile.ReadDemand(demandFile)
	if err != nil {
		return err
	}

	ao := profile.Simulate(demand)

	db, code, err := loadDatabaseWith(cfg, o.technology)
	if err != nil {
		return err
	}

	costs, err := chiller.CalcInvestmentCost(ao.PeakLoad_W(), db, code)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "steps\t%d\n", demand.NumberOfSteps())
	fmt.Fprintf(tw, "peak load (W)\t%.3f\n", ao.PeakLoad_W())
	fmt.Fprintf(tw, "electricity (kWh)\t%.3f\n", ao.Electricity_kWh())
	fmt.Fprintf(tw, "heat rejection (kWh)\t%.3f\n", ao.HeatRejection_kWh())
	fmt.Fprintf(tw, "mean COP (-)\t%.3f\n", ao.MeanCOP())
	fmt.Fprintf(tw, "capex_a (currency/a)\t%.3f\n", costs.CapexAnnual)
	fmt.Fprintf(tw, "opex_fixed (currency/a)\t%.3f\n", costs.OpexFixed)
	return tw.Flush()
}

func loadDatabase(o opts) (*costdb.Database, string, error) {
	cfg, err := config.Get(o.configFile)
	if err != nil {
		return nil, "", err
	}
	return loadDatabaseWith(cfg, o.technology)
}

func loadDatabaseWith(cfg *config.Config, technology string) (*costdb.Database, string, error) {
	code := technology
	if code == "" {
		code = cfg.Technology
	}
	if code == "" {
		return nil, "", fmt.Errorf("no technology code given (use --technology or the `technology` config key)")
	}

	rgn, err := costdb.RegionFromString(cfg.Region)
	if err != nil {
		return nil, "", err
	}

	logger.L().Infof("Load cost database for region `%s` from `%s`", rgn, cfg.DatabaseDir)
	db, err := costdb.LoadRegion(cfg.DatabaseDir, rgn)
	if err != nil {
		return nil, "", err
	}

	return db, code, nil
}
