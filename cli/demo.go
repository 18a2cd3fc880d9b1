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
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	cliviper "github.com/yomorun/lambda-stream/cli/viper"
	"github.com/yomorun/lambda-stream/core/ylog"
	"github.com/yomorun/lambda-stream/pkg/log"
	"github.com/yomorun/lambda-stream/pkg/streaming"
	"github.com/yomorun/lambda-stream/pkg/trace"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo [scenario...]",
	Short: "Run the response streaming demo scenarios",
	Long: `Run the response streaming demo scenarios one after another.

Each scenario finds the deployed function whose name starts with the prefix
followed by the scenario name, invokes it with response streaming and tail
logs, and prints the payload chunks, the completion error and the logs.
Without arguments the configured scenarios run: HappyPath, MidstreamError
and Timeout by default.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		v := cliviper.DemoViper

		conf, err := loadConfig(v)
		if err != nil {
			log.FailureStatusEvent(out, "%v", err)
			return
		}

		payload := v.GetString("payload")
		if payload != "" && !json.Valid([]byte(payload)) {
			log.FailureStatusEvent(out, "The payload must be a json document: %s", payload)
			return
		}
		timeout := v.GetDuration("timeout")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdown, err := trace.SetTracerProvider(ctx, serviceName)
		if err != nil {
			ylog.Warn("tracing disabled", "err", err)
		}
		defer shutdown(context.Background())

		lister, invoker, err := newClients(ctx, streaming.AWSOptions{Region: conf.Region, Profile: conf.Profile})
		if err != nil {
			log.FailureStatusEvent(out, "Failed to load the AWS config: %v", err)
			return
		}

		runner := streaming.NewRunner(lister, invoker,
			streaming.WithPrefix(conf.Prefix),
			streaming.WithPageSize(conf.PageSize),
			streaming.WithOutput(out),
			streaming.WithLogger(ylog.Logger()),
		)

		for _, s := range conf.Select(args...) {
			fmt.Fprintln(out, s.Title)

			p := s.Payload
			if payload != "" {
				p = payload
			}
			outcome := runScenario(ctx, runner, s.Name, p, timeout)
			ylog.Debug("scenario finished", "scenario", s.Name, "outcome", outcome)

			if ctx.Err() != nil {
				log.WarningStatusEvent(out, "Interrupted, the remaining scenarios are skipped")
				return
			}
		}
	},
}

func runScenario(ctx context.Context, runner *streaming.Runner, name, payload string, timeout time.Duration) streaming.Outcome {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var p []byte
	if payload != "" {
		p = []byte(payload)
	}
	return runner.Run(ctx, name, p)
}

func init() {
	rootCmd.AddCommand(demoCmd)

	addLambdaFlags(demoCmd)
	demoCmd.Flags().String("payload", "", "json event every scenario is invoked with, overrides the config file")
	demoCmd.Flags().Duration("timeout", 0, "client side deadline of each scenario, 0 leaves it to the service")

	cliviper.BindPFlags(cliviper.DemoViper, demoCmd.Flags())
}
