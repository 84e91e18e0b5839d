package main

import (
	"net/http"

	"github.com/isahakgaming-beep/thunderclient/cmd"
	"github.com/isahakgaming-beep/thunderclient/internals/ownhttp"
)

// set by goreleaser
var (
	version = "dev"
	commit  string
)

func main() {
	// replace default http client
	http.DefaultClient = ownhttp.New()

	cmd.Version = version
	cmd.Commit = commit
	cmd.Execute()
}
