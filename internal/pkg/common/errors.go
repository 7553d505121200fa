package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeConflict         = "CONFLICT"           // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 業務層哨兵錯誤
// 偵測與供應商錯誤只在核心邊界內流轉，最終都會被吸收成降級結果
var (
	// ErrDetectionFailed 視覺辨識呼叫失敗或逾時，呼叫端視為「未偵測到任何項目」
	ErrDetectionFailed = errors.New("detection failed")

	// ErrProviderQuotaExceeded 供應商當日額度已滿，僅用於鏈內換下一個供應商
	ErrProviderQuotaExceeded = errors.New("provider daily quota exceeded")

	// ErrProviderNoResult 供應商查無結果
	ErrProviderNoResult = errors.New("provider returned no result")

	// ErrDuplicateIngredient 手動新增的食材已存在，工作階段維持不變
	ErrDuplicateIngredient = errors.New("ingredient already in session")

	// ErrSessionNotFound 此使用者沒有進行中的工作階段
	ErrSessionNotFound = errors.New("no active ingredient session")

	// ErrIngredientNotFound 工作階段內找不到指定食材
	ErrIngredientNotFound = errors.New("ingredient not found in session")

	// ErrCacheMiss 快取未命中或已停用
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheFull 快取已滿
	ErrCacheFull = errors.New("cache full")
)

// 預定義錯誤
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrConflict        = NewError(ErrCodeConflict, "資源衝突", http.StatusConflict, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)

	// 業務錯誤
	ErrInvalidImageFormat = NewError("INVALID_IMAGE_FORMAT", "無效的圖片格式", http.StatusBadRequest, nil)
	ErrInvalidImageSize   = NewError("INVALID_IMAGE_SIZE", "圖片大小超出限制", http.StatusBadRequest, nil)
	ErrInvalidScanType    = NewError("INVALID_SCAN_TYPE", "掃描類型必須是 food 或 ingredient", http.StatusBadRequest, nil)
)
