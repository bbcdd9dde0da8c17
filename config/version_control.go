package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark    = "v1.0.0"
	Gene_Finder  = "v1.0.0"
	ORF_Finder   = "v1.1.0"
	Null_Model   = "v1.0.0"
	Translate    = "v1.0.0"
	Ran_DNA_Gen  = "v1.0.1"
	Sanity_check = "v1.1.0"
)
