// 31 July 2020

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/xtal_iface/config"
	"github.com/andrew-torda/xtal_iface/logging"
	"github.com/andrew-torda/xtal_iface/metrics"
	. "github.com/andrew-torda/xtal_iface/pkg/common"
	"github.com/andrew-torda/xtal_iface/pkg/randxtal"
)

// flagKeys says which flag sets which config key.
var flagKeys = map[string]string{
	"cutoff":    config.KeyCutoff,
	"cells":     config.KeyNumCells,
	"hetero":    config.KeyHetero,
	"workers":   config.KeyWorkers,
	"detector":  config.KeyDetector,
	"pad":       config.KeyPad,
	"verbose":   config.KeyVerbose,
	"log-level": config.KeyLevel,
}

// usageError is for mistakes on the command line, as opposed to
// failures while running.
type usageError struct{ error }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	const iseed int64 = 1637
	var (
		args     randxtal.RandXtalArgs
		cfgPath  string
		cell     []float64
		wantMets bool
	)
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "randxtal [flags] fname nchain length",
		Short: "Find the interfaces of a random crystal",
		Args: func(cmd *cobra.Command, pos []string) error {
			if err := cobra.ExactArgs(3)(cmd, pos); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })
	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	f.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	f.StringVar(&args.SGName, "sg", "P 21 21 21", "space group, empty for no crystal")
	f.Float64SliceVar(&cell, "cell", []float64{60, 70, 80, 90, 90, 90}, "a,b,c,alpha,beta,gamma")
	f.BoolVar(&wantMets, "metrics", false, "print search counters to stderr")
	f.Float64("cutoff", 5.5, "contact distance")
	f.Int("cells", 12, "neighbour cells in each direction")
	f.Bool("hetero", true, "include hetero atoms")
	f.Int("workers", 1, "goroutines for contact calculations")
	f.String("detector", "grid", "contact detector, grid or rtree")
	f.Float64("pad", 0, "extra margin on bounding boxes")
	f.BoolP("verbose", "v", false, "log search progress")
	f.String("log-level", "info", "debug, info, warn or error")

	cmd.RunE = func(cmd *cobra.Command, pos []string) error {
		for name, key := range flagKeys {
			if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}
		cfg, err := loadConfig(v, cfgPath)
		if err != nil {
			return usageError{err}
		}
		if len(cell) != 6 {
			return usageError{fmt.Errorf("cell wants 6 numbers, got %d", len(cell))}
		}
		copy(args.Cell[:], cell)
		const emsg = "Failed converting %s to positive integer"
		n, err := strconv.ParseUint(pos[1], 10, 32)
		if err != nil {
			return usageError{fmt.Errorf(emsg, pos[1])}
		}
		args.NChain = int(n)
		if n, err = strconv.ParseUint(pos[2], 10, 32); err != nil {
			return usageError{fmt.Errorf(emsg, pos[2])}
		}
		args.Len = int(n)

		cfg.Log.OutputPaths = nil // stderr
		log, err := logging.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync()
		reg := prometheus.NewRegistry()
		obs, err := metrics.NewObserver(reg)
		if err != nil {
			return err
		}
		args.Cutoff = cfg.Search.Cutoff
		args.Opts = cfg.Options(log)
		args.Opts.Observer = obs

		args.Wrtr = stdout
		if fname := pos[0]; fname != "-" && fname != "" {
			ft, err := os.Create(fname)
			if err != nil {
				return fmt.Errorf("File for output: %w", err)
			}
			defer ft.Close()
			args.Wrtr = ft
		}
		if err := randxtal.RandXtalMain(&args); err != nil {
			return err
		}
		if wantMets {
			s, err := metrics.Summary(reg)
			if err != nil {
				return err
			}
			fmt.Fprintln(stderr, s)
		}
		return nil
	}
	return cmd
}

// loadConfig reads the file, if there is one, into v, which already has
// the flags bound.
func loadConfig(v *viper.Viper, path string) (*config.Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}
	return config.FromViper(v)
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if _, ok := err.(usageError); ok {
			os.Exit(ExitUsageError)
		}
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
