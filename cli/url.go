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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	cliviper "github.com/yomorun/lambda-stream/cli/viper"
	"github.com/yomorun/lambda-stream/core/ylog"
	"github.com/yomorun/lambda-stream/pkg/config"
	"github.com/yomorun/lambda-stream/pkg/log"
	"github.com/yomorun/lambda-stream/pkg/streaming"
	"github.com/yomorun/lambda-stream/pkg/trace"
)

// urlCmd represents the url command
var urlCmd = &cobra.Command{
	Use:   "url <function-url>",
	Short: "Stream the response of a function URL",
	Long: `Send a SigV4 signed GET to a function URL using AWS_IAM auth and print
the response body as it streams in.

Credentials come from --access-key, --secret-key and --session-token when set,
otherwise from the default AWS credential chain.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		v := cliviper.URLViper

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdown, err := trace.SetTracerProvider(ctx, serviceName)
		if err != nil {
			ylog.Warn("tracing disabled", "err", err)
		}
		defer shutdown(context.Background())

		cfg, err := streaming.LoadAWSConfig(ctx, streaming.AWSOptions{
			Region:       v.GetString("region"),
			Profile:      v.GetString("profile"),
			AccessKey:    v.GetString("access-key"),
			SecretKey:    v.GetString("secret-key"),
			SessionToken: v.GetString("session-token"),
		})
		if err != nil {
			log.FailureStatusEvent(out, "Failed to load the AWS config: %v", err)
			return
		}

		invoker := streaming.NewURLInvoker(cfg.Credentials, cfg.Region,
			streaming.WithOutput(out),
			streaming.WithLogger(ylog.Logger()),
		)
		if err := invoker.Invoke(ctx, args[0]); err != nil {
			ylog.Error("function url invocation failed", "url", args[0], "err", err)
			log.FailureStatusEvent(out, "%v", err)
			return
		}
		fmt.Fprintln(out)
		log.SuccessStatusEvent(out, "Stream finished")
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().StringP("region", "r", config.DefaultRegion, "AWS region of the function URL")
	urlCmd.Flags().String("profile", "", "AWS shared config profile")
	urlCmd.Flags().String("access-key", "", "AWS access key id")
	urlCmd.Flags().String("secret-key", "", "AWS secret access key")
	urlCmd.Flags().String("session-token", "", "AWS session token, only for temporary credentials")

	cliviper.BindPFlags(cliviper.URLViper, urlCmd.Flags())
}
