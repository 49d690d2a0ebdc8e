package tenant

import "gorm.io/gorm"

// ListQuery carries the recognized list parameters. Limit and Search are
// mutually exclusive: Limit wins, then Search, then the resource fallback.
type ListQuery struct {
	Limit  *int
	Search string
}

// Resolver builds the visible row set for a resource's list operation.
// Limit returns the head of the full table under LimitOrder; Search does a
// case-sensitive substring match on SearchColumn; otherwise the fallback is
// either every row or the rows of the caller's company.
type Resolver struct {
	SearchColumn string
	LimitOrder   string
	DefaultOrder string
	CompanyScope bool
}

func (r Resolver) Apply(q ListQuery, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case q.Limit != nil:
			return db.Order(r.LimitOrder).Limit(*q.Limit)
		case q.Search != "":
			// LIKE is case sensitive on postgres, matching the source behavior
			return db.Where(r.SearchColumn+" LIKE ?", "%"+q.Search+"%").Order(r.DefaultOrder)
		default:
			if r.CompanyScope {
				db = db.Scopes(Scope(companyID))
			}
			return db.Order(r.DefaultOrder)
		}
	}
}
