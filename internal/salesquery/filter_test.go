// Package salesquery - Test chuẩn hóa FilterSpec và chính sách lenient coercion.
package salesquery

import (
	"net/url"
	"testing"
)

func TestNewFilterSpec_ListParams(t *testing.T) {
	params := url.Values{}
	params.Add("regions", "North, South")
	params.Add("regions", "East")
	params.Set("genders", "")
	params.Set("tags", " sale ,, premium ")

	spec := NewFilterSpec(params)

	if len(spec.Regions) != 3 {
		t.Errorf("Regions phải gom cả dạng lặp lại và phân cách dấu phẩy, got %v", spec.Regions)
	}
	if spec.Genders != nil {
		t.Errorf("List rỗng phải là absent (nil), không phải match-nothing, got %v", spec.Genders)
	}
	if len(spec.Tags) != 2 || spec.Tags[0] != "sale" || spec.Tags[1] != "premium" {
		t.Errorf("Tags phải được trim và bỏ phần tử rỗng, got %v", spec.Tags)
	}
}

func TestNewFilterSpec_LenientAgeBounds(t *testing.T) {
	params := url.Values{}
	params.Set("ageMin", "abc") // không parse được → drop im lặng
	params.Set("ageMax", "40")

	spec := NewFilterSpec(params)

	if spec.AgeMin != nil {
		t.Errorf("Bound không parse được phải bị drop, got %v", *spec.AgeMin)
	}
	if spec.AgeMax == nil || *spec.AgeMax != 40 {
		t.Errorf("ageMax=40 phải được giữ, got %v", spec.AgeMax)
	}
}

func TestFilterSpec_DateBounds(t *testing.T) {
	spec := FilterSpec{DateStart: "2023-01-15", DateEnd: "2023-01-15"}

	start, ok := spec.StartBound()
	if !ok {
		t.Fatal("StartBound phải parse được YYYY-MM-DD")
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("Start bound phải là 00:00:00, got %v", start)
	}

	end, ok := spec.EndBound()
	if !ok {
		t.Fatal("EndBound phải parse được YYYY-MM-DD")
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("End bound phải là cuối ngày 23:59:59.999, got %v", end)
	}
	if !end.After(start) {
		t.Error("End bound cùng ngày phải sau start bound")
	}
}

func TestFilterSpec_UnparsableDateBoundDropped(t *testing.T) {
	spec := FilterSpec{DateStart: "not-a-date"}
	if _, ok := spec.StartBound(); ok {
		t.Error("Date bound không parse được phải coi như không set")
	}
	if spec.HasDateRange() {
		t.Error("HasDateRange phải false khi không có bound hợp lệ nào")
	}
}
