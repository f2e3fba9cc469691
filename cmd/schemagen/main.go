// schemagen CLI - generate synthetic data from declarative schemas.
package main

import "github.com/schemagen/schemagen/pkg/cli"

func main() {
	cli.Execute()
}
