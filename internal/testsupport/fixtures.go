package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"olist/internal/config"
	"olist/internal/dataset"
)

// WriteCSV writes rows (header first) to path, creating parent directories.
func WriteCSV(t testing.TB, path string, rows [][]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
}

// WriteInput writes rows as the raw CSV for the named dataset.
func WriteInput(t testing.TB, cfg *config.Config, name string, rows [][]string) {
	t.Helper()
	WriteCSV(t, cfg.InputPath(name), rows)
}

// SeedInputs writes a small, internally consistent set of all nine raw
// tables. The fixture covers the cleaning rules: mojibake city names, the
// "########" timestamp artifact, duplicate keys, negative amounts,
// out-of-range scores and coordinates, and a product with a missing weight.
func SeedInputs(t testing.TB, cfg *config.Config) {
	t.Helper()

	WriteInput(t, cfg, dataset.Orders, [][]string{
		{"order_id", "customer_id", "order_status", "order_purchase_timestamp", "order_approved_at", "order_delivered_carrier_date", "order_delivered_customer_date", "order_estimated_delivery_date"},
		{"o1", "c1", "delivered", "2017-10-02 10:56:33", "2017-10-02 11:07:15", "2017-10-04 19:55:00", "2017-10-10 21:25:13", "2017-10-18 00:00:00"},
		{"o1", "c1", "delivered", "2017-10-02 10:56:33", "2017-10-02 11:07:15", "2017-10-04 19:55:00", "2017-10-10 21:25:13", "2017-10-18 00:00:00"},
		{"o2", "c2", "shipped", "2018-01-14 14:33:31", "2018-01-14 14:48:30", "2018-01-16 12:36:48", "########", "2018-02-05 00:00:00"},
		{"o3", "c3", "unavailable", "2018-02-19 22:54:58", "", "", "", "2018-03-15 00:00:00"},
		{"o4", "c4", "delivered", "2018-03-01 08:00:00", "2018-03-01 08:10:00", "2018-03-03 10:00:00", "2018-03-06 08:00:00", "2018-03-20 00:00:00"},
	})

	WriteInput(t, cfg, dataset.OrderItems, [][]string{
		{"order_id", "order_item_id", "product_id", "seller_id", "shipping_limit_date", "price", "freight_value"},
		{"o1", "1", "p1", "s1", "2017-10-06 11:07:15", "58.9", "13.29"},
		{"o1", "1", "p1", "s1", "2017-10-06 11:07:15", "58.9", "13.29"},
		{"o1", "2", "p2", "s1", "2017-10-06 11:07:15", "120", "20"},
		{"o2", "1", "p1", "s2", "2018-01-18 14:48:30", "199.9", "18.14"},
		{"o9", "1", "p1", "s1", "2018-01-18 14:48:30", "-5", "10"},
	})

	WriteInput(t, cfg, dataset.Customers, [][]string{
		{"customer_id", "customer_unique_id", "customer_zip_code_prefix", "customer_city", "customer_state"},
		{"c1", "u1", "01310", "sÃ£o paulo", "SP"},
		{"c2", "u2", "30130", "belo horizonte", "MG"},
		{"c3", "u3", "80010", "curitiba", "PR"},
		{"c4", "u4", "99999", "rio de janeiro", "RJ"},
		{"c5", "u1", "01310", "sÃ£o paulo", "SP"},
	})

	WriteInput(t, cfg, dataset.Products, [][]string{
		{"product_id", "product_category_name", "product_weight_g", "product_length_cm", "product_height_cm", "product_width_cm"},
		{"p1", "moveis_decoracao", "650", "28", "9", "14"},
		{"p2", "moveis_decoracao", "", "30", "10", "20"},
		{"p3", "moveis_decoracao", "400", "25", "8", "12"},
		{"p4", "", "", "40", "15", "30"},
		{"p1", "moveis_decoracao", "650", "28", "9", "14"},
	})

	WriteInput(t, cfg, dataset.Sellers, [][]string{
		{"seller_id", "seller_zip_code_prefix", "seller_city", "seller_state"},
		{"s1", "01310", "ribeirÃ£o preto", "SP"},
		{"s2", "30130", "belo horizonte", "MG"},
		{"s2", "30130", "belo horizonte", "MG"},
	})

	WriteInput(t, cfg, dataset.Payments, [][]string{
		{"order_id", "payment_sequential", "payment_type", "payment_installments", "payment_value"},
		{"o1", "1", "credit_card", "8", "99.33"},
		{"o1", "2", "voucher", "1", "20"},
		{"o2", "1", "boleto", "1", "218.04"},
		{"o4", "1", " CREDIT_CARD ", "1", "50"},
		{"o9", "1", "credit_card", "1", "-10"},
	})

	WriteInput(t, cfg, dataset.Reviews, [][]string{
		{"review_id", "order_id", "review_score", "review_comment_title", "review_comment_message", "review_creation_date", "review_answer_timestamp"},
		{"r1", "o1", "5", "", "Ã³timo produto", "2017-10-11 00:00:00", "2017-10-12 03:43:48"},
		{"r1", "o1", "5", "", "Ã³timo produto", "2017-10-11 00:00:00", "2017-10-12 03:43:48"},
		{"r2", "o1", "4", "", "chegou rÃ¡pido", "2017-10-12 00:00:00", "2017-10-13 10:02:01"},
		{"r3", "o2", "1", "", "", "2018-01-20 00:00:00", "2018-01-21 18:30:00"},
		{"r4", "o9", "9", "", "", "2018-01-20 00:00:00", "2018-01-21 18:30:00"},
	})

	WriteInput(t, cfg, dataset.Geolocation, [][]string{
		{"geolocation_zip_code_prefix", "geolocation_lat", "geolocation_lng", "geolocation_city", "geolocation_state"},
		{"01310", "-23.56", "-46.64", "sÃ£o paulo", "SP"},
		{"01310", "-23.57", "-46.65", "sÃ£o paulo", "SP"},
		{"30130", "-19.92", "-43.94", "belo horizonte", "MG"},
		{"99998", "100", "200", "nowhere", "XX"},
	})

	WriteInput(t, cfg, dataset.Translation, [][]string{
		{"product_category_name", "product_category_name_english"},
		{"moveis_decoracao", "furniture_decor"},
	})
}
