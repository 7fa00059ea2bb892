package salesvc

import (
	"context"
	"sort"
	"time"

	basesvc "sales_insight/internal/api/base/service"
	salesdto "sales_insight/internal/api/sales/dto"
	salesmodels "sales_insight/internal/api/sales/models"
	"sales_insight/internal/common"
	"sales_insight/internal/database"
	"sales_insight/internal/global"
	"sales_insight/internal/logger"
	"sales_insight/internal/salesquery"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSalesService đẩy filter/sort/paginate xuống MongoDB.
// Ba thao tác con (count, find trang, aggregate thống kê) chạy tuần tự trên
// CÙNG một filter nhưng không có snapshot isolation giữa chúng: khi có ghi
// đồng thời, kết quả có thể lệch trong cửa sổ giữa các lần đọc. Đây là
// tradeoff chấp nhận có chủ đích, không phải giả định ngầm.
type MongoSalesService struct {
	base    *basesvc.BaseServiceMongoImpl[salesmodels.SalesRecord]
	client  *mongo.Client
	timeout time.Duration
}

// NewMongoSalesService tạo service trên client được inject; collection lấy từ
// registry (đã đăng ký lúc khởi động). Không có flag kết nối module-level;
// tình trạng kho dữ liệu xác định bằng ping tại thời điểm hỏi (capability check).
func NewMongoSalesService(client *mongo.Client, timeout time.Duration) (*MongoSalesService, error) {
	collection, exists := global.RegistryCollections.Get(global.ColNames.SalesRecords)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Collection sales_records chưa được đăng ký",
			common.StatusInternalServerError,
			nil,
		)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MongoSalesService{
		base:    basesvc.NewBaseServiceMongo[salesmodels.SalesRecord](collection),
		client:  client,
		timeout: timeout,
	}, nil
}

// Backend trả về tên backend
func (s *MongoSalesService) Backend() string {
	return BackendMongo
}

// Query thực thi truy vấn pushdown: count → find trang → aggregate thống kê.
// Count/find fail làm fail cả request; thống kê fail degrade về zero.
func (s *MongoSalesService) Query(ctx context.Context, spec salesquery.FilterSpec, search string, sortSpec salesquery.SortSpec, pageReq salesquery.PageRequest) (*salesdto.SalesQueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := BuildSalesFilter(spec, search)

	total, err := s.base.CountDocuments(ctx, filter)
	if err != nil {
		return nil, tagQueryOp(err, common.ErrCodeQueryCount, "Không đếm được bản ghi theo filter")
	}

	window, pagination := salesquery.Paginate(total, pageReq)

	findOpts := options.Find().
		SetSort(BuildSalesSort(sortSpec)).
		SetSkip(int64(window.Skip)).
		SetLimit(int64(window.Limit))
	if sortSpec.Key == salesquery.SortByCustomerName {
		// Collation strength 2: so sánh không phân biệt hoa thường, khớp comparator in-memory
		findOpts.SetCollation(&options.Collation{Locale: "en", Strength: 2})
	}

	items, err := s.base.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, tagQueryOp(err, common.ErrCodeQueryFind, "Không lấy được trang dữ liệu theo filter")
	}

	stats, err := s.computeStatistics(ctx, filter)
	if err != nil {
		// Degrade: trang + phân trang vẫn hợp lệ, thống kê về zero
		logger.GetQueryLogger().WithError(err).Warn("Tính thống kê thất bại, trả về statistics rỗng")
		stats = salesquery.Statistics{}
	}

	return &salesdto.SalesQueryResult{
		Data:       items,
		Pagination: pagination,
		Statistics: stats,
	}, nil
}

// salesStatsRow là kết quả decode của $group thống kê
type salesStatsRow struct {
	TotalUnits   int64   `bson:"totalUnits"`
	SumTotal     float64 `bson:"sumTotal"`
	SumFinal     float64 `bson:"sumFinal"`
	TotalRecords int64   `bson:"totalRecords"`
}

// computeStatistics chạy pipeline $match+$group rồi tính discount từ hai tổng
func (s *MongoSalesService) computeStatistics(ctx context.Context, filter bson.M) (salesquery.Statistics, error) {
	var rows []salesStatsRow
	if err := s.base.Aggregate(ctx, BuildStatisticsPipeline(filter), &rows); err != nil {
		return salesquery.Statistics{}, tagQueryOp(err, common.ErrCodeQueryAggregate, "Không tính được thống kê theo filter")
	}
	if len(rows) == 0 {
		// Tập lọc rỗng: $group không cho document nào
		return salesquery.Statistics{}, nil
	}

	row := rows[0]
	stats := salesquery.Statistics{
		TotalUnits:   row.TotalUnits,
		TotalAmount:  row.SumFinal,
		TotalRecords: row.TotalRecords,
	}
	if d := row.SumTotal - row.SumFinal; d > 0 {
		stats.TotalDiscount = d
	}
	return stats, nil
}

// FilterOptions lấy các giá trị filter khả dụng bằng distinct + $group min/max
func (s *MongoSalesService) FilterOptions(ctx context.Context) (*salesdto.FilterOptionsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp := &salesdto.FilterOptionsResponse{}

	fields := []struct {
		name string
		dst  *[]string
	}{
		{"region", &resp.Regions},
		{"gender", &resp.Genders},
		{"productCategory", &resp.Categories},
		{"paymentMethod", &resp.PaymentMethods},
		// tags là mảng: distinct trả về các phần tử duy nhất của mọi mảng
		{"tags", &resp.Tags},
	}
	for _, f := range fields {
		values, err := s.base.Distinct(ctx, f.name, nil)
		if err != nil {
			return nil, tagQueryOp(err, common.ErrCodeQueryFind, "Không lấy được danh sách giá trị filter")
		}
		*f.dst = toStringSlice(values)
	}

	// Khoảng tuổi và khoảng ngày quan sát được
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "minAge", Value: bson.D{{Key: "$min", Value: "$age"}}},
			{Key: "maxAge", Value: bson.D{{Key: "$max", Value: "$age"}}},
			{Key: "minDate", Value: bson.D{{Key: "$min", Value: "$date"}}},
			{Key: "maxDate", Value: bson.D{{Key: "$max", Value: "$date"}}},
		}}},
	}
	var rows []struct {
		MinAge  int        `bson:"minAge"`
		MaxAge  int        `bson:"maxAge"`
		MinDate *time.Time `bson:"minDate"`
		MaxDate *time.Time `bson:"maxDate"`
	}
	if err := s.base.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, tagQueryOp(err, common.ErrCodeQueryAggregate, "Không tính được khoảng giá trị filter")
	}
	if len(rows) > 0 {
		resp.AgeRange = salesdto.NumericRange{Min: rows[0].MinAge, Max: rows[0].MaxAge}
		if rows[0].MinDate != nil {
			resp.DateRange.Min = rows[0].MinDate.Format("2006-01-02")
		}
		if rows[0].MaxDate != nil {
			resp.DateRange.Max = rows[0].MaxDate.Format("2006-01-02")
		}
	}

	return resp, nil
}

// Health ping MongoDB và đếm bản ghi; ping fail là lỗi precondition 503
func (s *MongoSalesService) Health(ctx context.Context) (*salesdto.HealthResponse, error) {
	if err := database.Ping(ctx, s.client); err != nil {
		return nil, common.ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	total, err := s.base.CountDocuments(ctx, nil)
	if err != nil {
		return nil, tagQueryOp(err, common.ErrCodeQueryCount, "Không đếm được tổng số bản ghi")
	}

	return &salesdto.HealthResponse{
		Status:       "healthy",
		Backend:      BackendMongo,
		TotalRecords: total,
	}, nil
}

func toStringSlice(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			result = append(result, s)
		}
	}
	sort.Strings(result)
	return result
}
