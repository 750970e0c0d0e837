// Command essaygen generates paragraphs of templated text around a topic
// sentence. It prompts for a sentence (or takes one as an argument),
// removes filler words, resolves the remaining words into related topics
// via the Datamuse word-association API, and prints the generated
// paragraphs to stdout. Logs go to stderr.
//
// Usage:
//
//	essaygen                     prompt interactively for a topic sentence
//	essaygen "winter mountains"  skip the prompt
//
// Flags: --config, --paragraphs, --log-level, --debug, --version.
//
// Exit codes: 0 = success (including "no topics found"), 1 = error.
package main

import (
	"os"

	"github.com/heartmarshall/essaygen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
