package main

import "github.com/yomorun/lambda-stream/cli"

func main() {
	cli.Execute()
}
