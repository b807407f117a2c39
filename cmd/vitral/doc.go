// Package main provides the vitral CLI.
//
// Install:
//
//	go install github.com/vitralapp/vitral/cmd/vitral@latest
//
// Commands:
//
//	vitral migrate           # run pending migrations
//	vitral migrate:rollback  # rollback last batch
//	vitral migrate:status    # show migration status
//	vitral seed              # seed the catalog from a preset
//	vitral presets           # list available presets
//
// The seed command is idempotent: it wipes previously seeded catalog rows
// and reseeds them from the chosen preset, leaving the tenant configuration
// row in place.
package main
