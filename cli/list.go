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

	"github.com/spf13/cobra"
	cliviper "github.com/yomorun/lambda-stream/cli/viper"
	"github.com/yomorun/lambda-stream/core/ylog"
	"github.com/yomorun/lambda-stream/pkg/log"
	"github.com/yomorun/lambda-stream/pkg/streaming"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the deployed functions matching the prefix",
	Long:  "List the name and ARN of every deployed function whose name starts with the prefix",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		conf, err := loadConfig(cliviper.ListViper)
		if err != nil {
			log.FailureStatusEvent(out, "%v", err)
			return
		}

		lister, _, err := newClients(cmd.Context(), streaming.AWSOptions{Region: conf.Region, Profile: conf.Profile})
		if err != nil {
			log.FailureStatusEvent(out, "Failed to load the AWS config: %v", err)
			return
		}

		resolver := streaming.NewResolver(lister,
			streaming.WithPrefix(conf.Prefix),
			streaming.WithPageSize(conf.PageSize),
			streaming.WithLogger(ylog.Logger()),
		)

		done := log.Spinner(out, "Listing functions with prefix %s in %s...", conf.Prefix, conf.Region)
		fns, err := resolver.List(cmd.Context())
		if err != nil {
			done(log.Failure)
			log.FailureStatusEvent(out, "Error while listing functions: %v", err)
			return
		}
		done(log.Success)

		if len(fns) == 0 {
			log.WarningStatusEvent(out, "No function found. Have you deployed it yet?")
			return
		}
		for _, fn := range fns {
			fmt.Fprintf(out, "%s\t%s\n", log.WhiteBold(fn.Name), fn.ARN)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	addLambdaFlags(listCmd)

	cliviper.BindPFlags(cliviper.ListViper, listCmd.Flags())
}
