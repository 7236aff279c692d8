//go:generate bash -c "if [ ! -f go.mod ]; then echo 'Initializing go.mod...'; go mod init .containifyci; else echo 'go.mod already exists. Skipping initialization.'; fi"
//go:generate go get github.com/containifyci/engine-ci/protos2
//go:generate go get github.com/containifyci/engine-ci/client
//go:generate go mod tidy

package main

import (
	"os"

	"github.com/containifyci/engine-ci/client/pkg/build"
)

func main() {
	os.Chdir("../")
	cli := build.NewGoServiceBuild("generate-token")
	cli.Image = ""
	cli.File = "cmd/generate-token/main.go"
	cli.Properties = map[string]*build.ListValue{
		"goreleaser": build.NewList("true"),
	}
	build.BuildAsync(cli)
}
