package database

import "testing"

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no placeholders",
			query: "SELECT COUNT(*) FROM progress",
			want:  "SELECT COUNT(*) FROM progress",
		},
		{
			name:  "single placeholder",
			query: "SELECT * FROM progress WHERE identifier = ?",
			want:  "SELECT * FROM progress WHERE identifier = $1",
		},
		{
			name:  "multiple placeholders",
			query: "INSERT INTO reward_grants (identifier, category, cohort) VALUES (?, ?, ?)",
			want:  "INSERT INTO reward_grants (identifier, category, cohort) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewritePlaceholdersToNumbered(tt.query)
			if got != tt.want {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialectDrivers(t *testing.T) {
	tests := []struct {
		name              string
		dialect           Dialect
		driver            string
		subdir            string
		supportsLastID    bool
		rewritesNumbering bool
	}{
		{name: "sqlite", dialect: NewSQLiteDialect(), driver: "sqlite3", subdir: "sqlite", supportsLastID: true},
		{name: "postgres", dialect: NewPostgresDialect(), driver: "postgres", subdir: "postgres", supportsLastID: false, rewritesNumbering: true},
		{name: "mysql", dialect: NewMySQLDialect(), driver: "mysql", subdir: "mysql", supportsLastID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %q, want %q", got, tt.driver)
			}
			if got := tt.dialect.SupportsLastInsertId(); got != tt.supportsLastID {
				t.Errorf("SupportsLastInsertId() = %v, want %v", got, tt.supportsLastID)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.subdir {
				t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.subdir)
			}
			rewritten := tt.dialect.RewriteQuery("SELECT 1 WHERE a = ?")
			if tt.rewritesNumbering && rewritten != "SELECT 1 WHERE a = $1" {
				t.Errorf("RewriteQuery() = %q, expected numbered placeholders", rewritten)
			}
			if !tt.rewritesNumbering && rewritten != "SELECT 1 WHERE a = ?" {
				t.Errorf("RewriteQuery() = %q, expected query unchanged", rewritten)
			}
		})
	}
}
