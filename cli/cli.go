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

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yomorun/lambda-stream/core/ylog"
	"github.com/yomorun/lambda-stream/pkg/config"
	"github.com/yomorun/lambda-stream/pkg/file"
	"github.com/yomorun/lambda-stream/pkg/streaming"
)

// serviceName names the traces of this command line.
const serviceName = "lambda-stream"

// newClients returns the function lister and the stream invoker for o.
var newClients = func(ctx context.Context, o streaming.AWSOptions) (lambda.ListFunctionsAPIClient, streaming.Invoker, error) {
	cfg, err := streaming.LoadAWSConfig(ctx, o)
	if err != nil {
		return nil, nil, err
	}
	client := streaming.NewClient(cfg)
	return client, streaming.NewInvoker(client, streaming.WithLogger(ylog.Logger())), nil
}

// addLambdaFlags adds the flags shared by the commands that list functions.
func addLambdaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "scenario config file (.yaml|.yml)")
	cmd.Flags().StringP("region", "r", config.DefaultRegion, "AWS region of the functions")
	cmd.Flags().String("profile", "", "AWS shared config profile")
	cmd.Flags().StringP("prefix", "p", config.DefaultPrefix, "function name prefix")
	cmd.Flags().Int("page-size", config.DefaultPageSize, "ListFunctions page size")
}

// loadConfig builds the config from, in increasing precedence:
// defaults, the config file, environment variables and flags.
func loadConfig(v *viper.Viper) (config.Config, error) {
	conf := config.Default()

	if path := v.GetString("config"); path != "" {
		abs, err := file.Abs(path)
		if err != nil {
			return conf, err
		}
		if conf, err = config.ParseConfigFile(abs); err != nil {
			return conf, err
		}
	}

	if v.IsSet("region") {
		conf.Region = v.GetString("region")
	}
	if v.IsSet("profile") {
		conf.Profile = v.GetString("profile")
	}
	if v.IsSet("prefix") {
		conf.Prefix = v.GetString("prefix")
	}
	if v.IsSet("page-size") {
		conf.PageSize = v.GetInt("page-size")
	}

	ylog.Debug("config loaded",
		"region", conf.Region,
		"profile", conf.Profile,
		"prefix", conf.Prefix,
		"page_size", conf.PageSize,
		"scenarios", len(conf.Scenarios),
	)

	return conf, config.Validate(&conf)
}
