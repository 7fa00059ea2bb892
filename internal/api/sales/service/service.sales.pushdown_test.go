// Package salesvc - Test query builder pushdown: cấu trúc filter bson phải
// phản chiếu đúng ngữ nghĩa predicate in-memory.
package salesvc

import (
	"testing"
	"time"

	"sales_insight/internal/salesquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildSalesFilter_Empty(t *testing.T) {
	filter := BuildSalesFilter(salesquery.FilterSpec{}, "")
	assert.Empty(t, filter, "Không ràng buộc nào phải cho filter rỗng (match tất cả)")
}

func TestBuildSalesFilter_SearchEscapesRegexMeta(t *testing.T) {
	filter := BuildSalesFilter(salesquery.FilterSpec{}, " 0.9(1) ")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "Search một mình phải là $or trên customerName/phoneNumber")
	require.Len(t, or, 2)

	nameCond := or[0]["customerName"].(bson.M)
	// Term phải là substring literal như strings.Contains: meta characters được escape
	assert.Equal(t, `0\.9\(1\)`, nameCond["$regex"])
	assert.Equal(t, "i", nameCond["$options"], "Search không phân biệt hoa thường")
}

func TestBuildSalesFilter_AllConstraintsAnded(t *testing.T) {
	min, max := 20, 40
	spec := salesquery.FilterSpec{
		Regions:   []string{"North"},
		Tags:      []string{"sale", "new"},
		AgeMin:    &min,
		AgeMax:    &max,
		DateStart: "2023-01-01",
		DateEnd:   "2023-01-31",
	}

	filter := BuildSalesFilter(spec, "an")

	and, ok := filter["$and"].([]bson.M)
	require.True(t, ok, "Nhiều ràng buộc phải AND với nhau, không gộp chung OR group")
	// search + regions + age + tags + date = 5 nhóm
	require.Len(t, and, 5)

	// Membership dùng $in
	assert.Equal(t, bson.M{"$in": []string{"North"}}, and[1]["region"])

	// Khoảng tuổi inclusive hai đầu
	assert.Equal(t, bson.M{"$gte": 20, "$lte": 40}, and[2]["age"])

	// Tags là OR các $regex đã escape
	tagOr := and[3]["$or"].([]bson.M)
	require.Len(t, tagOr, 2)
	assert.Equal(t, bson.M{"$regex": "sale", "$options": "i"}, tagOr[0]["tags"])

	// Khoảng ngày: end là cuối ngày 23:59:59.999
	dateCond := and[4]["date"].(bson.M)
	end := dateCond["$lte"].(time.Time)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	start := dateCond["$gte"].(time.Time)
	assert.True(t, start.Before(end))
}

func TestBuildSalesFilter_UnparsableDateBoundDropped(t *testing.T) {
	spec := salesquery.FilterSpec{DateStart: "garbage", DateEnd: "2023-01-31"}
	filter := BuildSalesFilter(spec, "")

	dateCond, ok := filter["date"].(bson.M)
	require.True(t, ok)
	assert.NotContains(t, dateCond, "$gte", "Bound hỏng phải bị drop như normalizer")
	assert.Contains(t, dateCond, "$lte")
}

func TestBuildSalesSort(t *testing.T) {
	s := BuildSalesSort(salesquery.SortSpec{Key: salesquery.SortByDate, Direction: salesquery.SortDesc})
	require.Len(t, s, 2)
	assert.Equal(t, bson.E{Key: "date", Value: -1}, s[0])
	assert.Equal(t, bson.E{Key: "_id", Value: 1}, s[1], "Luôn có _id tiebreaker để thứ tự ổn định")

	s = BuildSalesSort(salesquery.SortSpec{Key: salesquery.SortByCustomerName, Direction: salesquery.SortAsc})
	assert.Equal(t, bson.E{Key: "customerName", Value: 1}, s[0])
}

func TestBuildStatisticsPipeline(t *testing.T) {
	pipeline := BuildStatisticsPipeline(bson.M{"region": bson.M{"$in": []string{"North"}}})
	require.Len(t, pipeline, 2)

	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$group", pipeline[1][0].Key)

	group := pipeline[1][0].Value.(bson.D)
	keys := make([]string, 0, len(group))
	for _, e := range group {
		keys = append(keys, e.Key)
	}
	assert.ElementsMatch(t, []string{"_id", "totalUnits", "sumTotal", "sumFinal", "totalRecords"}, keys)
}
