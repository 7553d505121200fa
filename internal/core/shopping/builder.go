package shopping

import (
	"sort"
	"strings"

	"pantry-scan/internal/pkg/common"

	"go.uber.org/zap"
)

// 食譜未提供份量時的預設值
const (
	defaultAmount = "1"
	defaultUnit   = "piece"
)

// Selection 一筆選定的食譜（本地或外部來源）
type Selection struct {
	Title       string
	Ingredients []common.RecipeIngredient
}

// Build 從選定食譜推導尚缺的購物清單
// 以正規化名稱去重，UsedInRecipeCount 為引用該食材的食譜數
// 與既有食材對應（雙向子字串）的項目會被濾除，輸出依名稱排序
func Build(selections []Selection, haveIngredients []string) []common.ShoppingListItem {
	type aggregate struct {
		item    common.ShoppingListItem
		recipes map[int]bool
	}

	byName := make(map[string]*aggregate)

	for recipeIdx, sel := range selections {
		for _, ing := range sel.Ingredients {
			key := common.NormalizeName(ing.Name)
			if key == "" {
				continue
			}

			agg, ok := byName[key]
			if !ok {
				amount, unit := splitAmount(ing.Amount)
				agg = &aggregate{
					item: common.ShoppingListItem{
						Name:    common.TitleCaseName(ing.Name),
						Amount:  amount,
						Unit:    unit,
						Checked: false,
					},
					recipes: make(map[int]bool),
				}
				byName[key] = agg
			}
			agg.recipes[recipeIdx] = true
		}
	}

	items := make([]common.ShoppingListItem, 0, len(byName))
	for key, agg := range byName {
		if haveIngredient(key, haveIngredients) {
			continue
		}
		agg.item.UsedInRecipeCount = len(agg.recipes)
		items = append(items, agg.item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	common.LogDebug("購物清單已建立",
		zap.Int("recipes", len(selections)),
		zap.Int("items", len(items)),
	)

	return items
}

// haveIngredient 與任一既有食材名稱對應即視為已擁有
func haveIngredient(normalizedName string, have []string) bool {
	for _, h := range have {
		if common.NamesCorrespond(normalizedName, h) {
			return true
		}
	}
	return false
}

// splitAmount 將自由文字份量拆為數量與單位
// 首個字詞視為數量，其餘為單位；空白時使用預設值
func splitAmount(amount string) (string, string) {
	fields := strings.Fields(amount)
	switch len(fields) {
	case 0:
		return defaultAmount, defaultUnit
	case 1:
		return fields[0], defaultUnit
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
