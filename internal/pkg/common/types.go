package common

import (
	"fmt"
	"strings"
)

// Category 偵測項目的分類
type Category string

const (
	CategoryIngredient Category = "ingredient"
	CategoryFood       Category = "food"
	CategoryDish       Category = "dish"
	CategoryVegetable  Category = "vegetable"
	CategoryFruit      Category = "fruit"
	CategoryMeat       Category = "meat"
	CategoryDairy      Category = "dairy"
	CategoryGrain      Category = "grain"
	CategorySpice      Category = "spice"
	CategoryCondiment  Category = "condiment"
	CategoryOil        Category = "oil"
	CategoryManual     Category = "manual"
	CategoryOther      Category = "other"
)

// ScanMode 掃描模式
type ScanMode string

const (
	ScanModeFood       ScanMode = "food"
	ScanModeIngredient ScanMode = "ingredient"
)

// BoundingBox 偵測框（僅視覺辨識提供）
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedItem 分類器產出的單一偵測項目，產出後不再修改
type DetectedItem struct {
	Name        string       `json:"name"`
	Confidence  float64      `json:"confidence"`
	Category    Category     `json:"category"`
	BoundingBox *BoundingBox `json:"bounding_box,omitempty"`
}

// RecipeIngredient 食譜中的食材（名稱 + 自由文字份量）
type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecipeDTO 外部食譜來源統一後的輸出格式，不論原始 schema 為何
type RecipeDTO struct {
	Title          string             `json:"title"`
	Ingredients    []RecipeIngredient `json:"ingredients"`
	Steps          []string           `json:"steps"`
	PrepMinutes    int                `json:"prep_minutes"`
	CookMinutes    int                `json:"cook_minutes"`
	Servings       int                `json:"servings"`
	SourceProvider string             `json:"source_provider"`
}

// ShoppingListItem 購物清單項目
type ShoppingListItem struct {
	Name              string `json:"name"`
	Amount            string `json:"amount"`
	Unit              string `json:"unit"`
	UsedInRecipeCount int    `json:"used_in_recipe_count"`
	Checked           bool   `json:"checked"`
}

// NormalizeName 正規化名稱：去空白、轉小寫，作為所有名稱比對的基準
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TitleCaseName 顯示用名稱：每個單字首字母大寫
func TitleCaseName(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// NamesCorrespond 名稱對應規則：正規化後雙向子字串包含
// （"milk" 對應 "coconut milk"，反之亦然）
func NamesCorrespond(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// FormatDetectedItems 格式化偵測項目列表（日誌用）
func FormatDetectedItems(items []DetectedItem) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("- %s (%s): %.2f\n", it.Name, it.Category, it.Confidence))
	}
	return sb.String()
}
