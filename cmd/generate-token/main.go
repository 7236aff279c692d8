package main

import (
	"fmt"
	"io"
	"os"

	"github.com/containifyci/log-token/pkg/token"

	"github.com/containifyci/go-self-update/pkg/updater"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	command := ""
	if len(os.Args) >= 2 {
		command = os.Args[1]
	}

	switch command {
	case "version":
		fmt.Printf("generate-token %s, commit %s, built at %s\n", version, commit, date)
	case "update":
		u := updater.NewUpdater(
			"generate-token", "containifyci", "log-token", version,
		)
		updated, err := u.SelfUpdate()
		if err != nil {
			fmt.Printf("Update failed %+v\n", err)
		}
		if updated {
			fmt.Println("Update completed successfully!")
			return
		}
		fmt.Println("Already up-to-date")
	case "generate":
		os.Exit(generate(os.Args[2:], os.Stdout))
	default:
		os.Exit(generate(os.Args[1:], os.Stdout))
	}
}

// generate returns the process exit status instead of calling os.Exit so
// tests can drive it with an in-memory writer.
func generate(args []string, out io.Writer) int {
	if len(args) != 2 {
		printUsage(out)
		return 1
	}

	cred := token.NewCredential(args[0], args[1])
	printCredential(out, cred)
	return 0
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage: generate-token <tenant> <secret>")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Example:")
	fmt.Fprintln(out, "  generate-token amba my-secret-key")
}

// printCredential writes the token together with ready-to-paste usage text
// for the log ingestion endpoint.
func printCredential(out io.Writer, cred token.Credential) {
	fmt.Fprintf(out, "Tenant: %s\n", cred.Tenant)
	fmt.Fprintf(out, "Token:  %s\n", cred.Token)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Use in Authorization header:")
	fmt.Fprintf(out, "  Authorization: Bearer %s\n", cred.Token)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Example curl command:")
	fmt.Fprintf(out, "  curl -X POST \"http://localhost:8080/logs?tenant=%s\" \\\n", cred.Tenant)
	fmt.Fprintf(out, "    -H \"Authorization: Bearer %s\" \\\n", cred.Token)
	fmt.Fprintln(out, "    -H \"Content-Type: application/x-ndjson\" \\")
	fmt.Fprintln(out, "    --data-binary @example-log.jsonl")
}
