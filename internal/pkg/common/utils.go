package common

import "strings"

// SignificantWords 取出名稱中長度大於 3 的單字，供部分比對重試使用
func SignificantWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}
	return words
}
