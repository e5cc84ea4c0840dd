// pomgen generates Maven pom.xml files from declarative project descriptors.
package main

import (
	"os"

	"github.com/pomgen/pomgen/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
