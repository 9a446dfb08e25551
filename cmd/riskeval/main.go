// Command riskeval assesses workplace hazards with the NTP 330 method and
// keeps the resulting records in a local SQLite database.
package main

import (
	"os"

	"riskeval/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
