package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/awardly/verdict/loader"
	"github.com/awardly/verdict/rules"
)

func main() {
	var rulesPath string
	var factsPath string
	var asJSON bool

	flag.StringVar(&rulesPath, "rules", "", "Path to a rules file (JSON or YAML); built-in rules are used when omitted")
	flag.StringVar(&factsPath, "facts", "", "Path to a JSON facts file (required, or - for stdin)")
	flag.BoolVar(&asJSON, "json", false, "Print the result as JSON")
	flag.Parse()

	if factsPath == "" {
		log.Fatal("Facts file is required. Use -facts <file> or -facts - for stdin")
	}

	set := rules.DefaultRuleSet()
	if rulesPath != "" {
		loaded, err := loader.LoadFile(rulesPath)
		if err != nil {
			log.Printf("Falling back to built-in rules: %v", err)
		} else {
			set = loaded
		}
	}

	facts, err := readFacts(factsPath)
	if err != nil {
		log.Fatalf("Failed to read facts: %v", err)
	}

	result := rules.Resolve(facts, set)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		return
	}

	fmt.Printf("Decision: %s\n", result.Action.Decision)
	fmt.Printf("Reason:   %s\n", result.Action.Reason)
	if len(result.Fired) == 0 {
		fmt.Println("No rules fired.")
		return
	}
	fmt.Println("Fired rules:")
	for _, r := range result.Fired {
		fmt.Printf("  [%d] %s -> %s\n", r.Priority, r.Name, r.Action.Decision)
	}
}

func readFacts(path string) (rules.Facts, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var facts rules.Facts
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("invalid facts JSON: %w", err)
	}
	return facts, nil
}
