package database

// Regenerate sqlc/schema.sql from the migrations and the typed queries from
// sqlc/queries with:
//
//	go generate ./internal/database

//go:generate sh -c "cd ../.. && go run internal/database/tools/generate_schema.go"
//go:generate sh -c "cd ../.. && sqlc generate -f internal/database/sqlc/sqlc.yaml"
