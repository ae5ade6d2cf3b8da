// cronsync pushes the current cron job list to the dashboard as a full
// snapshot. Run it periodically or after cron changes.
//
// By default the job list comes from `openclaw cron list --json`; pass
// -file to read it from a JSON file instead (or "-" for stdin).
//
// Reads DASHBOARD_URL and WEBHOOK_API_KEY from the environment.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	file := flag.String("file", "", "read the job list from a JSON file instead of the openclaw CLI (\"-\" for stdin)")
	flag.Parse()

	jobsJSON, err := fetchJobs(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
		os.Exit(1)
	}

	// Validate locally before hitting the API so a broken CLI run fails
	// with a useful message.
	var jobs []json.RawMessage
	if err := json.Unmarshal(jobsJSON, &jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Sync failed: job list is not a JSON array: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d cron jobs\n", len(jobs))

	count, err := pushSnapshot(jobs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Synced %d jobs to dashboard\n", count)
}

func fetchJobs(file string) ([]byte, error) {
	switch file {
	case "":
		out, err := exec.Command("openclaw", "cron", "list", "--json").Output()
		if err != nil {
			return nil, fmt.Errorf("openclaw cron list: %w", err)
		}
		return out, nil
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(file)
	}
}

func pushSnapshot(jobs []json.RawMessage) (int, error) {
	dashboardURL := getEnv("DASHBOARD_URL", "http://localhost:8080")
	apiKey := os.Getenv("WEBHOOK_API_KEY")

	body, err := json.Marshal(map[string]any{"jobs": jobs})
	if err != nil {
		return 0, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, dashboardURL+"/api/cron", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("dashboard API error: %d", resp.StatusCode)
	}

	var result struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return result.Count, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
