// Package salesquery - Test cửa sổ trang và metadata phân trang.
package salesquery

import (
	"net/url"
	"testing"
)

func TestNewPageRequest_Defaults(t *testing.T) {
	req := NewPageRequest(url.Values{})
	if req.Page != 1 || req.PageSize != 10 {
		t.Errorf("Mặc định phải là page=1 pageSize=10, got %d/%d", req.Page, req.PageSize)
	}

	params := url.Values{}
	params.Set("page", "0")
	params.Set("pageSize", "-5")
	req = NewPageRequest(params)
	if req.Page != 1 || req.PageSize != 10 {
		t.Errorf("Giá trị ngoài miền phải rơi về mặc định, got %d/%d", req.Page, req.PageSize)
	}

	params.Set("page", "abc")
	req = NewPageRequest(params)
	if req.Page != 1 {
		t.Errorf("page không parse được phải rơi về 1, got %d", req.Page)
	}
}

func TestPaginate_Example25Items(t *testing.T) {
	// pageSize=10, totalItems=25 → totalPages=3; trang 3 hasNext=false hasPrev=true
	window, p := Paginate(25, PageRequest{Page: 3, PageSize: 10})

	if p.TotalPages != 3 {
		t.Errorf("totalPages phải là 3, got %d", p.TotalPages)
	}
	if window.Skip != 20 || window.Limit != 10 {
		t.Errorf("Trang 3 phải có skip=20 limit=10, got %d/%d", window.Skip, window.Limit)
	}
	if p.HasNextPage {
		t.Error("Trang cuối phải có hasNextPage=false")
	}
	if !p.HasPreviousPage {
		t.Error("Trang 3 phải có hasPreviousPage=true")
	}
}

func TestPaginate_MiddlePage(t *testing.T) {
	_, p := Paginate(25, PageRequest{Page: 2, PageSize: 10})
	if !p.HasNextPage || !p.HasPreviousPage {
		t.Error("Trang giữa phải có cả hasNext và hasPrev")
	}
}

func TestPaginate_EmptySet(t *testing.T) {
	window, p := Paginate(0, PageRequest{Page: 1, PageSize: 10})
	if p.TotalPages != 0 {
		t.Errorf("totalItems=0 phải cho totalPages=0, got %d", p.TotalPages)
	}
	if p.HasNextPage || p.HasPreviousPage {
		t.Error("Tập rỗng trang 1 không có next/prev")
	}
	if window.Skip != 0 {
		t.Errorf("skip phải là 0, got %d", window.Skip)
	}
}

func TestPaginate_BeyondEnd(t *testing.T) {
	window, p := Paginate(5, PageRequest{Page: 100, PageSize: 10})
	if window.Skip != 990 {
		t.Errorf("skip vẫn tính theo công thức, got %d", window.Skip)
	}
	if p.HasNextPage {
		t.Error("Vượt quá cuối tập không có trang tiếp")
	}
}
