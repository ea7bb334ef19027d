package schema

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// InitializeSchema sets up the database schema and indexes for cyclo
func InitializeSchema(db *surrealdb.DB) error {
	schemas := []string{
		// Define functions table
		`DEFINE TABLE functions SCHEMAFULL;
		 DEFINE FIELD name ON functions TYPE string;
		 DEFINE FIELD file ON functions TYPE string;
		 DEFINE FIELD line ON functions TYPE int;
		 DEFINE FIELD complexity ON functions TYPE int;
		 DEFINE FIELD created_at ON functions TYPE datetime DEFAULT time::now();
		 DEFINE INDEX func_name ON functions FIELDS name;
		 DEFINE INDEX func_file ON functions FIELDS file;
		 DEFINE INDEX func_complexity ON functions FIELDS complexity;`,
	}

	// Execute each schema definition
	for _, schema := range schemas {
		if _, err := surrealdb.Query[any](db, schema, map[string]interface{}{}); err != nil {
			return fmt.Errorf("schema initialization error: %w", err)
		}
	}

	return nil
}
