package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"shortlinks/cmd/linter/analyzer"
)

func main() {
	multichecker.Main(analyzer.Analyzer)
}
