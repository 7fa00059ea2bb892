package salesvc

import (
	"regexp"
	"strings"

	"sales_insight/internal/salesquery"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Query builder dịch FilterSpec sang filter MongoDB native. Ngữ nghĩa phải
// khớp từng điểm với salesquery.Matches: chạy filter này trên collection phải
// cho đúng tập bản ghi mà predicate in-memory chọn ra.

// BuildSalesFilter dựng bson filter từ FilterSpec + search term.
// Mỗi ràng buộc active là một phần tử trong $and; không ràng buộc nào → filter rỗng.
func BuildSalesFilter(spec salesquery.FilterSpec, search string) bson.M {
	var conditions []bson.M

	// Search: substring không phân biệt hoa thường trên tên HOẶC số điện thoại.
	// QuoteMeta để term là substring literal đúng như strings.Contains, không phải pattern.
	if term := trimmedLower(search); term != "" {
		pattern := regexp.QuoteMeta(term)
		conditions = append(conditions, bson.M{"$or": []bson.M{
			{"customerName": bson.M{"$regex": pattern, "$options": "i"}},
			{"phoneNumber": bson.M{"$regex": pattern, "$options": "i"}},
		}})
	}

	// Membership chính xác theo set
	if len(spec.Regions) > 0 {
		conditions = append(conditions, bson.M{"region": bson.M{"$in": spec.Regions}})
	}
	if len(spec.Genders) > 0 {
		conditions = append(conditions, bson.M{"gender": bson.M{"$in": spec.Genders}})
	}
	if len(spec.Categories) > 0 {
		conditions = append(conditions, bson.M{"productCategory": bson.M{"$in": spec.Categories}})
	}
	if len(spec.PaymentMethods) > 0 {
		conditions = append(conditions, bson.M{"paymentMethod": bson.M{"$in": spec.PaymentMethods}})
	}

	// Khoảng tuổi inclusive; min > max cho tập rỗng như predicate
	ageRange := bson.M{}
	if spec.AgeMin != nil {
		ageRange["$gte"] = *spec.AgeMin
	}
	if spec.AgeMax != nil {
		ageRange["$lte"] = *spec.AgeMax
	}
	if len(ageRange) > 0 {
		conditions = append(conditions, bson.M{"age": ageRange})
	}

	// Tags: OR các $regex; field tags là mảng nên $regex match từng phần tử,
	// đúng ngữ nghĩa "bất kỳ filter tag nào là substring của bất kỳ tag nào"
	if len(spec.Tags) > 0 {
		tagConds := make([]bson.M, 0, len(spec.Tags))
		for _, tag := range spec.Tags {
			tagConds = append(tagConds, bson.M{"tags": bson.M{"$regex": regexp.QuoteMeta(tag), "$options": "i"}})
		}
		conditions = append(conditions, bson.M{"$or": tagConds})
	}

	// Khoảng ngày: $gte/$lte trên kiểu date bỏ qua document không có field date
	// (type bracketing của MongoDB), khớp với "không có ngày thì không match"
	dateRange := bson.M{}
	if start, ok := spec.StartBound(); ok {
		dateRange["$gte"] = start
	}
	if end, ok := spec.EndBound(); ok {
		dateRange["$lte"] = end
	}
	if len(dateRange) > 0 {
		conditions = append(conditions, bson.M{"date": dateRange})
	}

	switch len(conditions) {
	case 0:
		return bson.M{}
	case 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}

func trimmedLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BuildSalesSort dựng sort key từ SortSpec, kèm _id phụ để thứ tự ổn định giữa
// các lần đọc (Mongo không đảm bảo thứ tự cho key trùng nhau nếu không có tiebreaker)
func BuildSalesSort(sortSpec salesquery.SortSpec) bson.D {
	dir := 1
	if sortSpec.Direction == salesquery.SortDesc {
		dir = -1
	}

	field := "date"
	switch sortSpec.Key {
	case salesquery.SortByQuantity:
		field = "quantity"
	case salesquery.SortByCustomerName:
		field = "customerName"
	}

	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}
}

// BuildStatisticsPipeline dựng pipeline $match + $group tính thống kê trên
// toàn bộ tập lọc. Discount tính từ hai tổng ở phía Go (sum-of-sums, clamp 0).
func BuildStatisticsPipeline(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalUnits", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			{Key: "sumTotal", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
			{Key: "sumFinal", Value: bson.D{{Key: "$sum", Value: "$finalAmount"}}},
			{Key: "totalRecords", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}
