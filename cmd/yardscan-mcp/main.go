package main

import (
	"fmt"
	"log"
	"os"

	"github.com/yardscan/yardscan-mcp/internal/ocr"
	"github.com/yardscan/yardscan-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("yardscan-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("yardscan-mcp - MCP server for vehicle yard-inventory scanning")
			fmt.Println()
			fmt.Println("Usage: yardscan-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  YARDSCAN_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  YARDSCAN_SEARCH_URL=<url>    Marketplace search endpoint")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("YARDSCAN_LOG_LEVEL") == "debug" {
		log.Printf("Yardscan MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Tesseract %s", ocr.Version())
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
