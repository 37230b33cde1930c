// cmd/havenctl/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
}

var rootCmd = &cobra.Command{
	Use:   "havenctl",
	Short: "havenctl manages the cipherhaven database schema",
	Long:  `havenctl initializes and inspects the database schema backing the organization service.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		if err := initializeSchema(db); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		fmt.Println("Schema initialized")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts per table",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		defer db.Close()

		for _, table := range []string{"users", "organizations", "memberships", "collections", "collection_grants"} {
			var count int64
			if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
				log.Fatalf("Failed to count %s: %v", table, err)
			}
			fmt.Printf("%-18s %d\n", table, count)
		}
	},
}

func mustConnect() *sql.DB {
	if dbConnString == "" {
		dbConnString = os.Getenv("DATABASE_URL")
	}
	if dbConnString == "" {
		log.Fatal("No database connection string provided (use --db or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if verbose {
		fmt.Println("Connected to database")
	}
	return db
}

func initializeSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE EXTENSION IF NOT EXISTS citext;
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	DO $$ BEGIN
		CREATE TYPE user_status AS ENUM ('pending', 'active', 'locked');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	DO $$ BEGIN
		CREATE TYPE membership_role AS ENUM ('user', 'admin', 'owner');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	DO $$ BEGIN
		CREATE TYPE membership_status AS ENUM ('invited', 'accepted', 'confirmed');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email CITEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		public_key TEXT,
		status user_status NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS organizations (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		billing_email CITEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS memberships (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		user_id UUID NOT NULL REFERENCES users(id),
		role membership_role NOT NULL DEFAULT 'user',
		status membership_status NOT NULL DEFAULT 'invited',
		access_all BOOLEAN NOT NULL DEFAULT FALSE,
		encrypted_key TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (organization_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS collections (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		organization_id UUID NOT NULL REFERENCES organizations(id),
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS collection_grants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		collection_id UUID NOT NULL REFERENCES collections(id),
		user_id UUID NOT NULL REFERENCES users(id),
		read_only BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (collection_id, user_id)
	);

	CREATE INDEX IF NOT EXISTS idx_memberships_org ON memberships(organization_id);
	CREATE INDEX IF NOT EXISTS idx_collections_org ON collections(organization_id);
	CREATE INDEX IF NOT EXISTS idx_grants_user ON collection_grants(user_id);
	`)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
