// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ConnectionChecker interface {
	IsConnected() bool
}

// Handler reports the connectivity of every named checker. It responds with
// 503 when any of them is disconnected.
func Handler(checkers map[string]ConnectionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]bool, len(checkers))
		healthy := true
		for name, checker := range checkers {
			status[name] = checker.IsConnected()
			healthy = healthy && status[name]
		}

		w.Header().Set("Content-Type", "application/json")
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(status)
	}
}

// StartHealthEndpoint starts /health endpoint on provided port
func StartHealthEndpoint(port uint16, checkers map[string]ConnectionChecker) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", Handler(checkers))
	log.Info().Msgf("started /health endpoint on port %d", port)
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	if err != nil {
		log.Err(err).Msg("health endpoint stopped")
	}
}
