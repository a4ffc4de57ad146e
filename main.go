package main

import (
	"os"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
