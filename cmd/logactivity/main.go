// logactivity posts one activity event to the dashboard webhook.
//
// Usage: logactivity <type> <title> [description] [metadata-json]
//
// Example:
//
//	logactivity cron "Cron: nick-health-check" "Completed successfully" '{"duration":"15s"}'
//
// Reads DASHBOARD_URL and WEBHOOK_API_KEY from the environment.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: logactivity <type> <title> [description] [metadata-json]")
		fmt.Fprintln(os.Stderr, "Types: message, tool, cron, heartbeat, error")
		os.Exit(1)
	}

	payload := map[string]any{
		"type":  os.Args[1],
		"title": os.Args[2],
	}
	if len(os.Args) > 3 {
		payload["description"] = os.Args[3]
	}
	if len(os.Args) > 4 {
		var metadata map[string]any
		if err := json.Unmarshal([]byte(os.Args[4]), &metadata); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid metadata JSON")
			os.Exit(1)
		}
		payload["metadata"] = metadata
	}

	dashboardURL := getEnv("DASHBOARD_URL", "http://localhost:8080")
	apiKey := os.Getenv("WEBHOOK_API_KEY")

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode payload: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, dashboardURL+"/api/webhook", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to log activity: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "API error: %d\n", resp.StatusCode)
		os.Exit(1)
	}

	fmt.Println("Activity logged")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
