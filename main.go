package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gene_finder_go/benchmark"
	version_control "gene_finder_go/config"
	"gene_finder_go/gene_finder"
	"gene_finder_go/null_model"
	"gene_finder_go/orf_finder"
	"gene_finder_go/ran_dna_gen"
	"gene_finder_go/sanity_check"
	"gene_finder_go/translate"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Gene Finder - Custom Help Menu
Usage:
  gene_finder_go <tool> [options]

Tools:
  gene_finder		Find protein-coding ORFs that beat a shuffled null model
  orf_finder		List non-nested open reading frames as GFF3
  null_model		Report the chance-level ORF length threshold
  translate		Translate coding sequences to amino acids
  ran_dna_gen		Generate random DNA sequence
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information

Settings:
  Tools that run the null model accept -config <file> and read
  GENE_FINDER_* environment variables (e.g. GENE_FINDER_NULL_MODEL_TRIALS).`,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Gene Finder - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tGene Finder:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tGene Finder:\t\t%s\n", version_control.Gene_Finder)
	fmt.Printf("\tORF Finder:\t\t%s\n", version_control.ORF_Finder)
	fmt.Printf("\tNull Model:\t\t%s\n", version_control.Null_Model)
	fmt.Printf("\tTranslate:\t\t%s\n", version_control.Translate)
	fmt.Printf("\tRandom DNA Generator:\t%s\n", version_control.Ran_DNA_Gen)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {
	log.SetFlags(0)
	log.SetPrefix("[gene_finder_go] ")

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Executable-level help only when no tool is named
	if len(os.Args) == 2 {
		if arg := os.Args[1]; arg == "-h" || arg == "-help" || arg == "--help" {
			printCustomHelp()
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "gene_finder":
			gene_finder.Run(cleanedArgs)
		case "orf_finder":
			orf_finder.Run(cleanedArgs)
		case "null_model":
			null_model.Run(cleanedArgs)
		case "translate":
			translate.Run(cleanedArgs)
		case "ran_dna_gen":
			ran_dna_gen.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("gene_finder_go %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
