package main

import (
	"fmt"
	"os"

	"github.com/kwalther/psodemo/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		styles := ui.DefaultStyles()
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
