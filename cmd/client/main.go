package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/adrianliechti/llmstxt/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")

	modeFlag := flag.String("mode", "digest", "output mode (digest, full, both)")
	outputFlag := flag.String("output", "", "write documents to files instead of stdout")

	flag.Parse()

	site := flag.Arg(0)

	if site == "" {
		fmt.Fprintln(os.Stderr, "usage: client [flags] <website-url>")
		os.Exit(1)
	}

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	result, err := c.Generations.New(context.Background(), client.GenerateRequest{
		URL:  site,
		Mode: *modeFlag,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "crawled %d pages (%d successful, %d failed, %.1f%%)\n",
		result.Total, result.Successful, result.Failed, result.Rate)

	if *outputFlag != "" {
		if result.LLMsText != "" {
			if err := os.WriteFile(*outputFlag+"/llms.txt", []byte(result.LLMsText), 0o644); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		}

		if result.LLMsFullText != "" {
			if err := os.WriteFile(*outputFlag+"/llms-full.txt", []byte(result.LLMsFullText), 0o644); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		}

		return
	}

	if result.LLMsText != "" {
		fmt.Println(result.LLMsText)
	}

	if result.LLMsFullText != "" {
		fmt.Println(result.LLMsFullText)
	}
}
