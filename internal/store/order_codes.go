package store

import (
	"database/sql"
	"fmt"
)

// OrderCodeMapping 订单代号映射记录
type OrderCodeMapping struct {
	ID          int64  `json:"id"`
	ParentSku   string `json:"parentSku"`
	ProductName string `json:"productName"`
	OrderCode   string `json:"orderCode"`
	CreatedAt   string `json:"createdAt"`
}

// UpsertOrderCode 写入订单代号，按 parent_sku 覆盖（insert-or-replace）
func (s *Store) UpsertOrderCode(parentSku, productName, orderCode string) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO order_codes (parent_sku, product_name, order_code)
		VALUES (?, ?, ?)
	`, parentSku, productName, orderCode)
	if err != nil {
		return fmt.Errorf("failed to upsert order code: %w", err)
	}
	return nil
}

// GetOrderCode 按 parent_sku 查询代号，不存在时返回 found=false
func (s *Store) GetOrderCode(parentSku string) (code string, found bool, err error) {
	err = s.db.QueryRow(
		"SELECT order_code FROM order_codes WHERE parent_sku = ?", parentSku,
	).Scan(&code)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return code, true, nil
}

// ListOrderCodes 列出全部映射，按创建时间倒序
func (s *Store) ListOrderCodes() ([]OrderCodeMapping, error) {
	rows, err := s.db.Query(`
		SELECT id, parent_sku, product_name, order_code, created_at
		FROM order_codes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]OrderCodeMapping, 0)
	for rows.Next() {
		var m OrderCodeMapping
		if err := rows.Scan(&m.ID, &m.ParentSku, &m.ProductName, &m.OrderCode, &m.CreatedAt); err != nil {
			return nil, err
		}
		codes = append(codes, m)
	}

	return codes, rows.Err()
}

// DeleteOrderCode 按 id 删除映射，id 不存在时返回 found=false
func (s *Store) DeleteOrderCode(id int64) (found bool, err error) {
	res, err := s.db.Exec("DELETE FROM order_codes WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete order code: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
