package controllers

import (
	"fmt"

	"github.com/membergate/membergate/internal/pkg/entitlements"
	"github.com/membergate/membergate/internal/pkg/env"
)

var store entitlements.Store

// InitializeControllers wires the injected entitlement store. Routers call
// this once before registering routes; tests swap in a memory store.
func InitializeControllers(s entitlements.Store) {
	store = s
}

func getStore() entitlements.Store {
	if store == nil {
		store = entitlements.NewMemoryStore()
	}
	return store
}

// appBaseURL is the externally reachable origin used when composing
// magic links.
func appBaseURL() string {
	port := env.GetEnv("APP_PORT", "3000")
	return env.GetEnv("APP_BASE_URL", fmt.Sprintf("http://localhost:%s", port))
}

