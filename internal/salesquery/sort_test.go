// Package salesquery - Test comparator và tính stable của sort.
package salesquery

import (
	"testing"

	salesmodels "sales_insight/internal/api/sales/models"
)

func TestNewSortSpec_Defaults(t *testing.T) {
	spec := NewSortSpec("", "")
	if spec.Key != SortByDate || spec.Direction != SortDesc {
		t.Errorf("Mặc định phải là date desc, got %s %s", spec.Key, spec.Direction)
	}

	spec = NewSortSpec("quantity", "")
	if spec.Direction != SortAsc {
		t.Errorf("Key khác date không chỉ định chiều phải mặc định asc, got %s", spec.Direction)
	}

	spec = NewSortSpec("totalAmount", "asc")
	if spec.Key != SortByDate {
		t.Errorf("Key không hợp lệ phải rơi về date, got %s", spec.Key)
	}
}

func TestSort_DateDescExample(t *testing.T) {
	recs := []salesmodels.SalesRecord{
		{Quantity: 3, Date: date("2023-02-01")},
		{Quantity: 5, Date: date("2023-01-01")},
	}

	Sort(recs, SortSpec{Key: SortByDate, Direction: SortDesc})

	if !recs[0].Date.After(*recs[1].Date) {
		t.Errorf("date desc phải cho [2023-02-01, 2023-01-01], got [%v, %v]", recs[0].Date, recs[1].Date)
	}
	if stats := Aggregate(recs); stats.TotalUnits != 8 {
		t.Errorf("totalUnits phải là 8, got %d", stats.TotalUnits)
	}
}

func TestSort_MissingDateComparesEarliest(t *testing.T) {
	recs := []salesmodels.SalesRecord{
		{CustomerName: "A", Date: date("2023-01-01")},
		{CustomerName: "B", Date: nil},
	}

	Sort(recs, SortSpec{Key: SortByDate, Direction: SortAsc})
	if recs[0].CustomerName != "B" {
		t.Error("Ngày thiếu phải so sánh như mốc sớm nhất (đứng đầu khi asc)")
	}

	Sort(recs, SortSpec{Key: SortByDate, Direction: SortDesc})
	if recs[1].CustomerName != "B" {
		t.Error("Ngày thiếu phải đứng cuối khi desc")
	}
}

func TestSort_CustomerNameCaseInsensitive(t *testing.T) {
	recs := []salesmodels.SalesRecord{
		{CustomerName: "binh"},
		{CustomerName: "An"},
	}

	Sort(recs, SortSpec{Key: SortByCustomerName, Direction: SortAsc})
	if recs[0].CustomerName != "An" {
		t.Errorf("So sánh tên phải không phân biệt hoa thường, got %v trước", recs[0].CustomerName)
	}
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	recs := []salesmodels.SalesRecord{
		{CustomerName: "first", Quantity: 5},
		{CustomerName: "second", Quantity: 5},
		{CustomerName: "third", Quantity: 5},
		{CustomerName: "small", Quantity: 1},
	}

	Sort(recs, SortSpec{Key: SortByQuantity, Direction: SortAsc})
	if recs[0].CustomerName != "small" {
		t.Fatal("Quantity 1 phải đứng đầu khi asc")
	}
	if recs[1].CustomerName != "first" || recs[2].CustomerName != "second" || recs[3].CustomerName != "third" {
		t.Errorf("Key bằng nhau phải giữ thứ tự input (stable), got %s %s %s",
			recs[1].CustomerName, recs[2].CustomerName, recs[3].CustomerName)
	}

	Sort(recs, SortSpec{Key: SortByQuantity, Direction: SortDesc})
	if recs[0].CustomerName != "first" || recs[1].CustomerName != "second" || recs[2].CustomerName != "third" {
		t.Errorf("Stable phải giữ cả khi desc, got %s %s %s",
			recs[0].CustomerName, recs[1].CustomerName, recs[2].CustomerName)
	}
}
