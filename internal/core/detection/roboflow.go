package detection

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"pantry-scan/internal/infrastructure/config"
	"pantry-scan/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Prediction 視覺端點回傳的單一預測
type Prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// VisionClient 視覺分類端點介面，方便測試時替換
type VisionClient interface {
	Detect(ctx context.Context, imageBytes []byte, mode common.ScanMode) ([]Prediction, error)
}

// RoboflowClient Roboflow serverless 視覺辨識客戶端
// 食物與食材各使用一個獨立模型
type RoboflowClient struct {
	config *config.VisionConfig
	client *resty.Client
}

// NewRoboflowClient 創建 Roboflow 客戶端
func NewRoboflowClient(cfg *config.VisionConfig) *RoboflowClient {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	return &RoboflowClient{
		config: cfg,
		client: client,
	}
}

// Detect 呼叫對應模式的模型，回傳原始預測列表
func (c *RoboflowClient) Detect(ctx context.Context, imageBytes []byte, mode common.ScanMode) ([]Prediction, error) {
	modelURL := c.config.FoodModelURL
	apiKey := c.config.FoodAPIKey
	if mode == common.ScanModeIngredient {
		modelURL = c.config.IngredientModelURL
		apiKey = c.config.IngredientAPIKey
	}

	// Roboflow serverless 接受 base64 字串作為請求體
	body := base64.StdEncoding.EncodeToString(imageBytes)

	common.LogDebug("發送視覺辨識請求",
		zap.String("mode", string(mode)),
		zap.Int("payload_length", len(body)),
	)

	var result struct {
		Predictions []Prediction `json:"predictions"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("api_key", apiKey).
		SetBody(body).
		SetResult(&result).
		Post(modelURL)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDetectionFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: vision endpoint returned status %d", common.ErrDetectionFailed, resp.StatusCode())
	}

	return result.Predictions, nil
}
