// Command conference-tracker scrapes academic conference announcements into
// a persistent JSON store.
package main

import "github.com/mazim-lab/conference-tracker/internal/cli"

func main() {
	cli.Execute()
}
