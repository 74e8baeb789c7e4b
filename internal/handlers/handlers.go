package handlers

import (
	"encoding/json"
	"net/http"

	"veridoc/internal/pipeline"
	"veridoc/internal/roster"
)

// Package-level wiring, set once at startup before the router is mounted.
var (
	proc        *pipeline.Processor
	profiles    []roster.Profile
	shareSecret string
	baseURL     string
)

// Setup wires the handlers to the processor, roster and share-link settings.
func Setup(p *pipeline.Processor, rosterProfiles []roster.Profile, secret, base string) {
	proc = p
	profiles = rosterProfiles
	shareSecret = secret
	baseURL = base
}

func writeJSONResp(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
