/*
Copyright © 2021 CELLA, Inc.

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
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/yomorun/lambda-stream/core/ylog"
	"github.com/yomorun/lambda-stream/pkg/file"
	"github.com/yomorun/lambda-stream/pkg/log"
)

var (
	verbose    bool
	jsonStatus bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "lambda-stream",
	Short:   "Invoke AWS Lambda functions and print their streamed responses",
	Version: GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			conf := ylog.DefaultConfig()
			conf.Level = "debug"
			ylog.SetDefault(ylog.NewFromConfig(conf))
		}
		if jsonStatus {
			log.EnableJSONFormat()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initDotEnv)

	// set version
	setVersion()

	// overwrite the shorthand of version flag to V.
	rootCmd.Flags().BoolP("version", "V", false, "version for lambda-stream")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonStatus, "json", false, "print status lines as json")
}

// initDotEnv loads environment variables from .env file.
func initDotEnv() {
	if file.Exists(".env") {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
			os.Exit(1)
		}
	}
}

func setVersion() {
	template := fmt.Sprintf("lambda-stream version: %s\n", rootCmd.Version)
	rootCmd.SetVersionTemplate(template)
}
