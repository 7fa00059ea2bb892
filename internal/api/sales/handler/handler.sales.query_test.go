// Package saleshdl - Test handler truy vấn qua HTTP: các dạng truyền param
// danh sách ở query string phải cho cùng kết quả.
package saleshdl

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	salesmodels "sales_insight/internal/api/sales/models"
	salesvc "sales_insight/internal/api/sales/service"
	"sales_insight/internal/global"
	"sales_insight/internal/salesquery"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queryEnvelope là phần envelope cần kiểm tra trong response
type queryEnvelope struct {
	Code int `json:"code"`
	Data struct {
		Data       []salesmodels.SalesRecord `json:"data"`
		Pagination salesquery.Pagination     `json:"pagination"`
	} `json:"data"`
	Status string `json:"status"`
}

func newTestApp() *fiber.App {
	global.InitValidator()

	records := []salesmodels.SalesRecord{
		{CustomerName: "An", Region: "North"},
		{CustomerName: "Binh", Region: "South"},
		{CustomerName: "Cuong", Region: "East"},
		{CustomerName: "Dung", Region: "North"},
		{CustomerName: "Em", Region: "South"},
		{CustomerName: "Phuc", Region: "East"},
	}

	app := fiber.New()
	handler := NewSalesHandler(salesvc.NewMemorySalesService(records))
	app.Get("/api/v1/sales", handler.HandleQuery)
	return app
}

func doQuery(t *testing.T, app *fiber.App, target string) queryEnvelope {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err, "Request thất bại")
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode, "Truy vấn hợp lệ phải trả 200")

	var body queryEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), "Không decode được response")
	return body
}

func TestHandleQuery_RepeatedListParams(t *testing.T) {
	app := newTestApp()

	// Lặp key: cả hai giá trị phải vào filter, không chỉ giá trị đầu
	body := doQuery(t, app, "/api/v1/sales?regions=North&regions=South")
	assert.Equal(t, int64(4), body.Data.Pagination.TotalItems,
		"regions=North&regions=South phải lọc theo cả hai region")
	for _, rec := range body.Data.Data {
		assert.Contains(t, []string{"North", "South"}, rec.Region)
	}
}

func TestHandleQuery_CommaListParamsEquivalent(t *testing.T) {
	app := newTestApp()

	repeated := doQuery(t, app, "/api/v1/sales?regions=North&regions=South")
	comma := doQuery(t, app, "/api/v1/sales?regions=North,South")

	assert.Equal(t, repeated.Data.Pagination.TotalItems, comma.Data.Pagination.TotalItems,
		"Hai dạng truyền danh sách phải cho cùng tập kết quả")
	assert.Equal(t, "success", comma.Status)
}
