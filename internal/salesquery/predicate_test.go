// Package salesquery - Test predicate: AND của search/membership/tuổi/tags/ngày.
package salesquery

import (
	"testing"
	"time"

	salesmodels "sales_insight/internal/api/sales/models"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func sampleRecords() []salesmodels.SalesRecord {
	return []salesmodels.SalesRecord{
		{CustomerName: "Nguyen Van An", PhoneNumber: "0901234567", Region: "North", Gender: "Male", Age: 30,
			ProductCategory: "Electronics", Quantity: 3, TotalAmount: 300, FinalAmount: 270,
			PaymentMethod: "Cash", Tags: []string{"Clearance Sale", "Popular"}, Date: date("2023-02-01")},
		{CustomerName: "Tran Thi Binh", PhoneNumber: "0912345678", Region: "South", Gender: "Female", Age: 25,
			ProductCategory: "Clothing", Quantity: 5, TotalAmount: 500, FinalAmount: 450,
			PaymentMethod: "Card", Tags: []string{"Premium"}, Date: date("2023-01-01")},
		{CustomerName: "Le Van Cuong", PhoneNumber: "0987654321", Region: "North", Gender: "Male", Age: 45,
			ProductCategory: "Electronics", Quantity: 1, TotalAmount: 100, FinalAmount: 100,
			PaymentMethod: "Cash", Tags: nil, Date: nil},
	}
}

func TestMatches_SearchNameOrPhone(t *testing.T) {
	recs := sampleRecords()

	if !Matches(recs[0], FilterSpec{}, "van an") {
		t.Error("Search phải match substring tên không phân biệt hoa thường")
	}
	if !Matches(recs[1], FilterSpec{}, "0912") {
		t.Error("Search phải match substring số điện thoại")
	}
	if Matches(recs[1], FilterSpec{}, "van an") {
		t.Error("Search không match thì bản ghi phải bị loại")
	}
	if !Matches(recs[2], FilterSpec{}, "  ") {
		t.Error("Search toàn whitespace nghĩa là không ràng buộc")
	}
}

func TestMatches_TagSubstringOr(t *testing.T) {
	recs := sampleRecords()
	spec := FilterSpec{Tags: []string{"sale"}}

	// "sale" là substring của "Clearance Sale" (case-insensitive)
	if !Matches(recs[0], spec, "") {
		t.Error("Filter tag 'sale' phải match bản ghi có tag 'Clearance Sale'")
	}
	if Matches(recs[1], spec, "") {
		t.Error("Filter tag 'sale' không được match bản ghi chỉ có tag 'Premium'")
	}
}

func TestMatches_AgeRangeInclusive(t *testing.T) {
	recs := sampleRecords()
	min, max := 25, 30

	spec := FilterSpec{AgeMin: &min, AgeMax: &max}
	if !Matches(recs[0], spec, "") || !Matches(recs[1], spec, "") {
		t.Error("Khoảng tuổi phải inclusive hai đầu")
	}
	if Matches(recs[2], spec, "") {
		t.Error("Tuổi 45 nằm ngoài [25,30] phải bị loại")
	}
}

func TestFilter_MinGreaterThanMaxYieldsEmpty(t *testing.T) {
	min, max := 30, 20
	spec := FilterSpec{AgeMin: &min, AgeMax: &max}

	got := Filter(sampleRecords(), spec, "")
	if len(got) != 0 {
		t.Errorf("min > max phải cho tập rỗng, không phải lỗi; got %d bản ghi", len(got))
	}
}

func TestMatches_DateRange(t *testing.T) {
	recs := sampleRecords()
	spec := FilterSpec{DateStart: "2023-01-01", DateEnd: "2023-01-31"}

	if Matches(recs[0], spec, "") {
		t.Error("2023-02-01 nằm ngoài khoảng tháng 1")
	}
	if !Matches(recs[1], spec, "") {
		t.Error("2023-01-01 phải match bound start inclusive 00:00:00")
	}
	if Matches(recs[2], spec, "") {
		t.Error("Bản ghi không có ngày không bao giờ match khi có ràng buộc ngày")
	}
}

func TestMatches_AllConstraintsAnded(t *testing.T) {
	recs := sampleRecords()
	spec := FilterSpec{Regions: []string{"North"}, Categories: []string{"Electronics"}, Tags: []string{"popular"}}

	// recs[0] thỏa cả 3; recs[2] thỏa region+category nhưng không có tag
	if !Matches(recs[0], spec, "") {
		t.Error("Bản ghi thỏa mọi ràng buộc phải match")
	}
	if Matches(recs[2], spec, "") {
		t.Error("Các ràng buộc AND với nhau; thiếu một là loại")
	}
}

func TestFilter_MonotonicNarrowing(t *testing.T) {
	recs := sampleRecords()
	base := FilterSpec{Regions: []string{"North"}}
	narrower := FilterSpec{Regions: []string{"North"}, Categories: []string{"Electronics"}, Tags: []string{"sale"}}

	n1 := len(Filter(recs, base, ""))
	n2 := len(Filter(recs, narrower, ""))
	if n2 > n1 {
		t.Errorf("Thêm ràng buộc chỉ được thu hẹp tập kết quả: %d > %d", n2, n1)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	recs := sampleRecords()
	spec := FilterSpec{Genders: []string{"Male"}}

	once := Filter(recs, spec, "")
	twice := Filter(once, spec, "")
	if len(once) != len(twice) {
		t.Errorf("Filter hai lần cùng spec phải cho cùng tập: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].CustomerName != twice[i].CustomerName {
			t.Errorf("Thứ tự bản ghi phải giữ nguyên sau filter lần hai")
		}
	}
}
