/*
Copyright © 2026 the Gaskin authors.
This file is part of Gaskin.

Gaskin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Gaskin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Gaskin.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package gaskinutil holds the configuration handling and command-line
// interface of the gaskin command, which evaluates the built-in
// demonstration mechanism.
package gaskinutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialmodel/gaskin"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the gaskin
	// command.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "temperature",
			usage: `
              temperature specifies the mixture temperature [K] at which
              rates are evaluated.`,
			shorthand:  "T",
			defaultVal: 1200.0,
			flagsets:   []*pflag.FlagSet{ratesCmd.Flags()},
		},
		{
			name: "pressure",
			usage: `
              pressure specifies the mixture pressure [Pa] at which rates
              are evaluated.`,
			shorthand:  "P",
			defaultVal: gaskin.OneAtm,
			flagsets:   []*pflag.FlagSet{ratesCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "composition",
			usage: `
              composition specifies the mixture composition as mole
              fractions by species name. An empty map selects the built-in
              demonstration composition.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{ratesCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Tmin",
			usage: `
              Tmin specifies the lower end of the temperature interval [K]
              of the rate-constant plot.`,
			defaultVal: 500.0,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "Tmax",
			usage: `
              Tmax specifies the upper end of the temperature interval [K]
              of the rate-constant plot.`,
			defaultVal: 2500.0,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "points",
			usage: `
              points specifies the number of temperature samples of the
              rate-constant plot.`,
			defaultVal: 100,
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the file the rate-constant plot is written
              to. The format is inferred from the file extension.`,
			shorthand:  "o",
			defaultVal: "rates.png",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GASKIN")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				s := b.String()
				if option.shorthand == "" {
					set.String(option.name, s, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, s, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(ratesCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gaskin: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for getStringMapString variable %s: %#v", varName, i))
	}
}

// compositionFromConfig converts the composition option to mole fractions,
// falling back to the demonstration composition when the option is empty.
func compositionFromConfig(cfg *viper.Viper) (map[string]float64, error) {
	m := GetStringMapString("composition", cfg)
	if len(m) == 0 {
		return DemoComposition(), nil
	}
	x := make(map[string]float64, len(m))
	for name, s := range m {
		xi, err := cast.ToFloat64E(s)
		if err != nil {
			return nil, fmt.Errorf("gaskin: mole fraction of %s: %v", name, err)
		}
		x[name] = xi
	}
	return x, nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gaskin",
	Short: "A gas-phase chemical kinetics calculator.",
	Long: `Gaskin evaluates reaction rates of elementary gas-phase chemistry.
Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'GASKIN_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Gaskin.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Gaskin v%s\n", gaskin.Version)
	},
	DisableAutoGenTag: true,
}

// ratesCmd evaluates the demonstration mechanism at one state and prints a
// rate table.
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Evaluate reaction rates at one mixture state.",
	Long: `rates evaluates the built-in demonstration mechanism at the given
temperature, pressure, and composition, and prints the forward rate
constants, rates of progress, and net species production rates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gas, k, err := DemoMechanism()
		if err != nil {
			return err
		}
		x, err := compositionFromConfig(Cfg)
		if err != nil {
			return err
		}
		if err := gas.SetState(Cfg.GetFloat64("temperature"), Cfg.GetFloat64("pressure"), x); err != nil {
			return err
		}

		nr := k.NReactions()
		kf := make([]float64, nr)
		ropf := make([]float64, nr)
		ropr := make([]float64, nr)
		ropnet := make([]float64, nr)
		k.GetFwdRateConstants(kf)
		k.GetFwdRatesOfProgress(ropf)
		k.GetRevRatesOfProgress(ropr)
		k.GetNetRatesOfProgress(ropnet)

		cmd.Printf("state: T = %g K, P = %g Pa, [M] = %.6g mol/m³\n\n",
			gas.Temperature(), gas.Pressure(), gas.MolarDensity())
		cmd.Printf("%-28s %13s %13s %13s %13s\n", "reaction", "kf", "fwd rop", "rev rop", "net rop")
		for i := 0; i < nr; i++ {
			cmd.Printf("%-28s %13.5e %13.5e %13.5e %13.5e\n",
				k.Reaction(i).String(), kf[i], ropf[i], ropr[i], ropnet[i])
		}

		wdot := make([]float64, gas.NSpecies())
		k.NetProductionRates(wdot)
		cmd.Printf("\n%-8s %13s\n", "species", "wdot")
		for i := range wdot {
			cmd.Printf("%-8s %13.5e\n", gas.SpeciesName(i), wdot[i])
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// plotCmd draws an Arrhenius diagram of the demonstration mechanism.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot forward rate constants against temperature.",
	Long: `plot draws an Arrhenius diagram (log₁₀ k against 1000/T) of every
reaction of the built-in demonstration mechanism at the given pressure and
composition, and writes it to the output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gas, k, err := DemoMechanism()
		if err != nil {
			return err
		}
		x, err := compositionFromConfig(Cfg)
		if err != nil {
			return err
		}
		output := Cfg.GetString("output")
		err = SaveRatePlot(gas, k, Cfg.GetFloat64("pressure"),
			Cfg.GetFloat64("Tmin"), Cfg.GetFloat64("Tmax"), Cfg.GetInt("points"),
			x, output)
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", output)
		return nil
	},
	DisableAutoGenTag: true,
}
