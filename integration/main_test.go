package integration

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/subosito/gotenv"
)

var (
	verboseLogs = flag.Bool("verbose-logs", false, "Forward debug logs of the provider to the test output")
)

func init() {
	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error getting current directory: %s\n", err)
		return
	}

	envFile := filepath.Join(currentDir, "..", ".env")

	fmt.Printf("Loading .env from: %s\n", envFile)
	err = gotenv.Load(envFile)
	if err != nil {
		fmt.Printf("Error loading .env file: %s\n", err)
	} else {
		fmt.Println("Successfully loaded .env file")

		fmt.Printf("WSRPC_URL: %s\n", os.Getenv("WSRPC_URL"))
		fmt.Printf("WSRPC_HOST: %s\n", os.Getenv("WSRPC_HOST"))
		fmt.Printf("WSRPC_PORT: %s\n", os.Getenv("WSRPC_PORT"))
		fmt.Printf("WSRPC_INTEGRATION_TESTS: %s\n", os.Getenv("WSRPC_INTEGRATION_TESTS"))

		if os.Getenv("WSRPC_INTEGRATION_TESTS") == "" {
			os.Setenv("WSRPC_INTEGRATION_TESTS", "true")
			fmt.Println("Automatically enabled integration tests (WSRPC_INTEGRATION_TESTS=true)")
		}
	}
}

func TestMain(m *testing.M) {
	flag.Parse()

	if *verboseLogs {
		os.Setenv("WSRPC_DEVELOPMENT", "true")
	}

	code := m.Run()

	os.Exit(code)
}
