package server

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeStorageError logs the real failure and returns an opaque 500 so
// internal detail never reaches the caller.
func writeStorageError(w http.ResponseWriter, route string, err error) {
	log.Printf("%s error: %v", route, err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
