package tenant_test

import (
	"testing"

	"github.com/sampita/companytree/internal/tenant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true})
	assert.NoError(t, err)

	return db
}

func buildSQL(t *testing.T, db *gorm.DB, r tenant.Resolver, q tenant.ListQuery, companyID string) (string, []interface{}) {
	t.Helper()

	var rows []map[string]interface{}
	stmt := db.Table("departments").
		Scopes(r.Apply(q, companyID)).
		Find(&rows).Statement

	return stmt.SQL.String(), stmt.Vars
}

func intPtr(n int) *int { return &n }

func TestResolver_LimitWinsOverSearchAndScope(t *testing.T) {
	db := newDryRunDB(t)

	r := tenant.Resolver{
		SearchColumn: "name",
		LimitOrder:   "name ASC",
		DefaultOrder: "name ASC",
		CompanyScope: true,
	}

	sql, _ := buildSQL(t, db, r, tenant.ListQuery{Limit: intPtr(5), Search: "eng"}, "company-1")

	assert.Contains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "LIKE")
	assert.NotContains(t, sql, "company_id")
	assert.Contains(t, sql, "name ASC")
}

func TestResolver_SearchIsCaseSensitiveSubstring(t *testing.T) {
	db := newDryRunDB(t)

	r := tenant.Resolver{
		SearchColumn: "name",
		LimitOrder:   "name ASC",
		DefaultOrder: "name ASC",
	}

	sql, vars := buildSQL(t, db, r, tenant.ListQuery{Search: "eng"}, "company-1")

	// LIKE, not ILIKE: substring match stays case sensitive
	assert.Contains(t, sql, "name LIKE")
	assert.NotContains(t, sql, "ILIKE")
	assert.Contains(t, vars, "%eng%")
	assert.NotContains(t, sql, "LIMIT")
}

func TestResolver_FallbackScopesToCompany(t *testing.T) {
	db := newDryRunDB(t)

	r := tenant.Resolver{
		SearchColumn: "position",
		LimitOrder:   "created_at DESC",
		DefaultOrder: "created_at ASC",
		CompanyScope: true,
	}

	sql, vars := buildSQL(t, db, r, tenant.ListQuery{}, "company-1")

	assert.Contains(t, sql, "company_id")
	assert.Contains(t, vars, "company-1")
	assert.NotContains(t, sql, "LIKE")
	assert.NotContains(t, sql, "LIMIT")
}

func TestResolver_FallbackGlobalWhenUnscoped(t *testing.T) {
	db := newDryRunDB(t)

	r := tenant.Resolver{
		SearchColumn: "name",
		LimitOrder:   "name ASC",
		DefaultOrder: "name ASC",
		CompanyScope: false,
	}

	sql, _ := buildSQL(t, db, r, tenant.ListQuery{}, "company-1")

	assert.NotContains(t, sql, "company_id")
	assert.Contains(t, sql, "name ASC")
}
