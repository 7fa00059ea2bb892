// Package loader - Test parse CSV với lenient coercion và tách tags.
package loader

import (
	"strings"
	"testing"
)

const sampleCSV = `Date,Customer Name,Phone Number,Customer Region,Gender,Age,Product Category,Product Name,Quantity,Price per Unit,Discount Percentage,Total Amount,Final Amount,Payment Method,Tags,Order Status
2023-02-01,Nguyen Van An,0901234567,North,Male,30,Electronics,Laptop,3,100,10,300,270,Cash,"Clearance Sale, Popular",Completed
,Tran Thi Binh,0912345678,South,Female,abc,Clothing,Shirt,xyz,50,0,250,250,Card,Premium,Completed
`

func TestReadSalesCSV(t *testing.T) {
	records, err := ReadSalesCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadSalesCSV trả về lỗi: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Phải nạp 2 bản ghi, got %d", len(records))
	}

	first := records[0]
	if first.CustomerName != "Nguyen Van An" || first.Quantity != 3 || first.FinalAmount != 270 {
		t.Errorf("Bản ghi đầu parse sai: %+v", first)
	}
	if first.Date == nil {
		t.Error("Ngày hợp lệ phải được parse")
	}
	if len(first.Tags) != 2 || first.Tags[0] != "Clearance Sale" || first.Tags[1] != "Popular" {
		t.Errorf("Tags phải tách theo dấu phẩy và trim, got %v", first.Tags)
	}

	second := records[1]
	if second.Date != nil {
		t.Error("Ngày rỗng phải cho Date = nil")
	}
	if second.Age != 0 || second.Quantity != 0 {
		t.Errorf("Số không parse được phải về 0 (lenient coercion), got age=%d quantity=%d", second.Age, second.Quantity)
	}
	if second.TotalAmount != 250 {
		t.Errorf("Các field hợp lệ trên dòng hỏng vẫn phải parse, got %v", second.TotalAmount)
	}
}

func TestReadSalesCSV_HeaderOnly(t *testing.T) {
	csv := "Date,Customer Name,Quantity\n"
	records, err := ReadSalesCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("File chỉ có header không phải lỗi: %v", err)
	}
	// Dataset rỗng nạp thành công phải là slice rỗng, không phải nil:
	// nil là sentinel "chưa nạp" ở tầng service
	if records == nil {
		t.Fatal("Dataset rỗng phải cho slice rỗng, không phải nil")
	}
	if len(records) != 0 {
		t.Errorf("File chỉ có header phải cho 0 bản ghi, got %d", len(records))
	}
}

func TestReadSalesCSV_MissingColumns(t *testing.T) {
	csv := "Customer Name,Quantity\nAn,5\n"
	records, err := ReadSalesCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Header thiếu cột không phải lỗi: %v", err)
	}
	if records[0].Region != "" || records[0].Quantity != 5 {
		t.Errorf("Cột thiếu cho field rỗng, cột có vẫn parse: %+v", records[0])
	}
}
