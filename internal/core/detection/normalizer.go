package detection

import (
	"context"
	"math"
	"sort"

	"pantry-scan/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// 食材分類器雜訊較多，信心門檻放低
	ingredientConfidenceFloor = 0.05
	foodConfidenceFloor       = 0.10

	// 輸出上限
	ingredientResultLimit = 10
	foodResultLimit       = 5
)

// Normalizer 把視覺端點的原始輸出整理成標準化的偵測項目列表
type Normalizer struct {
	vision VisionClient
}

// NewNormalizer 創建偵測正規化服務
func NewNormalizer(vision VisionClient) *Normalizer {
	return &Normalizer{vision: vision}
}

// Classify 辨識圖片並回傳標準化後的偵測項目
// 傳輸層錯誤會包裝成 ErrDetectionFailed；零項目不是錯誤
func (n *Normalizer) Classify(ctx context.Context, imageBytes []byte, mode common.ScanMode) ([]common.DetectedItem, error) {
	predictions, err := n.vision.Detect(ctx, imageBytes, mode)
	if err != nil {
		common.LogError("視覺辨識呼叫失敗",
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		return nil, err
	}

	floor := foodConfidenceFloor
	limit := foodResultLimit
	if mode == common.ScanModeIngredient {
		floor = ingredientConfidenceFloor
		limit = ingredientResultLimit
	}

	items := make([]common.DetectedItem, 0, len(predictions))
	for _, p := range predictions {
		if p.Class == "" || p.Confidence <= floor {
			continue
		}

		item := common.DetectedItem{
			Name:       displayName(p.Class, mode),
			Confidence: math.Round(p.Confidence*100) / 100,
			Category:   categorize(p.Class, mode),
		}
		if p.X != 0 || p.Y != 0 {
			item.BoundingBox = &common.BoundingBox{
				X:      p.X,
				Y:      p.Y,
				Width:  p.Width,
				Height: p.Height,
			}
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Confidence > items[j].Confidence
	})

	if len(items) > limit {
		items = items[:limit]
	}

	common.LogInfo("偵測結果正規化完成",
		zap.String("mode", string(mode)),
		zap.Int("raw_count", len(predictions)),
		zap.Int("kept_count", len(items)),
	)

	return items, nil
}
