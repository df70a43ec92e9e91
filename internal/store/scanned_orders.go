package store

import (
	"database/sql"
	"fmt"
)

// ScannedOrder 已扫描运单记录
type ScannedOrder struct {
	ID             int64  `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Courier        string `json:"courier"`
	ScannedAt      string `json:"scannedAt"`
}

// MarkScanned 记录一次扫描，重复运单号为 no-op（insert-or-ignore，先到的快递商生效）
func (s *Store) MarkScanned(trackingNumber, courier string) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO scanned_orders (tracking_number, courier)
		VALUES (?, ?)
	`, trackingNumber, courier)
	if err != nil {
		return fmt.Errorf("failed to mark scanned: %w", err)
	}
	return nil
}

// IsScanned 判断运单号是否已扫描
func (s *Store) IsScanned(trackingNumber string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM scanned_orders WHERE tracking_number = ?", trackingNumber,
	).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListScannedTracking 列出全部已扫描运单号
func (s *Store) ListScannedTracking() ([]string, error) {
	rows, err := s.db.Query("SELECT tracking_number FROM scanned_orders")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracking := make([]string, 0)
	for rows.Next() {
		var tn string
		if err := rows.Scan(&tn); err != nil {
			return nil, err
		}
		tracking = append(tracking, tn)
	}

	return tracking, rows.Err()
}

// CountScannedByCourier 按快递商统计已扫描数量
func (s *Store) CountScannedByCourier() (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT courier, COUNT(*) AS count
		FROM scanned_orders
		GROUP BY courier
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var courier string
		var count int
		if err := rows.Scan(&courier, &count); err != nil {
			return nil, err
		}
		counts[courier] = count
	}

	return counts, rows.Err()
}

// ResetScanned 清空全部扫描记录
func (s *Store) ResetScanned() error {
	if _, err := s.db.Exec("DELETE FROM scanned_orders"); err != nil {
		return fmt.Errorf("failed to reset scanned orders: %w", err)
	}
	return nil
}
