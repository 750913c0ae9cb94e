package handlers

import (
	"courtside/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// BindListParams binds page and pageSize from the query string, clamping
// both to sane values. When any of the given filter keys is present but
// no explicit page was requested, the listing restarts at page one:
// changing a filter should never leave the caller stranded on a page
// that no longer exists.
func BindListParams(c *gin.Context, filterKeys ...string) models.ListParams {
	var params models.ListParams
	_ = c.ShouldBindQuery(&params)

	_, pageExplicit := c.GetQuery("page")
	if !pageExplicit || params.Page < 1 {
		params.Page = 1
	}
	for _, key := range filterKeys {
		if _, ok := c.GetQuery(key); ok && !pageExplicit {
			params.Page = 1
			break
		}
	}

	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}
	return params
}
