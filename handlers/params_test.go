package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createListContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestBindListParamsDefaults(t *testing.T) {
	c := createListContext(t, "/api/facilities")

	params := BindListParams(c, "category", "q")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, defaultPageSize, params.PageSize)
}

func TestBindListParamsKeepsExplicitPage(t *testing.T) {
	c := createListContext(t, "/api/facilities?page=3&pageSize=24")

	params := BindListParams(c, "category", "q")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 24, params.PageSize)
}

func TestBindListParamsFilterWithoutPageStartsAtOne(t *testing.T) {
	// A filter change arrives without a page parameter; the listing must
	// restart at page one rather than stay on a deep page.
	c := createListContext(t, "/api/facilities?category=pools")

	params := BindListParams(c, "category", "q")
	assert.Equal(t, 1, params.Page)
}

func TestBindListParamsFilterWithExplicitPageIsHonored(t *testing.T) {
	c := createListContext(t, "/api/facilities?category=pools&page=2")

	params := BindListParams(c, "category", "q")
	assert.Equal(t, 2, params.Page)
}

func TestBindListParamsClampsPageSize(t *testing.T) {
	c := createListContext(t, "/api/facilities?pageSize=5000")
	params := BindListParams(c, "category")
	assert.Equal(t, maxPageSize, params.PageSize)

	c = createListContext(t, "/api/facilities?pageSize=0")
	params = BindListParams(c, "category")
	assert.Equal(t, defaultPageSize, params.PageSize)
}

func TestBindListParamsRejectsNonPositivePage(t *testing.T) {
	c := createListContext(t, "/api/facilities?page=-2")

	params := BindListParams(c, "category")
	assert.Equal(t, 1, params.Page)
}
