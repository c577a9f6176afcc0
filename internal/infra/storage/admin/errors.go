package admin

import "errors"

var (
	// ErrAdminNotFound возвращается, когда активный администратор не найден
	ErrAdminNotFound = errors.New("admin.repository: admin not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("admin.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("admin.repository: failed to scan row")
)
