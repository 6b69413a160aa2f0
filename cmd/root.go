/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/quadindex/InputParameters"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quadindex",
	Short: "Triangle list index buffers for quads",
	Long: `
Generates the index buffer for a batch of independent quads, each drawn as two triangles,
and writes it to a file. Run without a subcommand it generates the default 65536 quads
into quad_indices.txt,

quadindex -n 1024 -f inl -o PrecomputedQuadIndices.inl`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: startProfile,
	RunE:              runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() (err error) {
	err = rootCmd.Execute()
	if profiler != nil {
		profiler.Stop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
	}
	return
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quadindex.yaml)")
	pf.IntP("numQuads", "n", InputParameters.DefaultNumQuads, "Number of quads to generate indices for")
	pf.IntP("startIndex", "s", 0, "Vertex index of the first quad's first vertex")
	pf.StringP("outputFile", "o", InputParameters.DefaultOutputFile, "File to write the indices to, overwritten if present")
	pf.StringP("format", "f", InputParameters.DefaultFormat, "Output format: csv, inl (C/C++ initializer) or yaml")
	pf.StringP("inputFile", "I", "", "YAML file for parameters like:\n\t- NumQuads\n\t- OutputFile")
	pf.Bool("strict", false, "Treat a negative number of quads as an error instead of a warning")
	pf.BoolP("print", "p", true, "Print the generated indices to stdout")
	pf.String("profile", "", "Write a profile of the run: cpu or mem")
}

var boundFlags = []string{"numQuads", "startIndex", "outputFile", "format", "strict", "print"}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".quadindex" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".quadindex")
	}
	viper.SetEnvPrefix("QUADINDEX")
	viper.AutomaticEnv() // read in environment variables that match
	for _, name := range boundFlags {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func startProfile(cmd *cobra.Command, args []string) (err error) {
	var (
		mode, _ = cmd.Flags().GetString("profile")
		opts    = []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook}
	)
	switch strings.ToLower(mode) {
	case "":
		return
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	default:
		return fmt.Errorf("unknown profile mode [%s], must be cpu or mem", mode)
	}
	profiler = profile.Start(opts...)
	return
}
