package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素，未缩放）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时独占一行
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if MeasureTextWidth(textStr, face) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		if currentLine == "" {
			currentLine = word
			continue
		}

		testLine := currentLine + " " + word
		if MeasureTextWidth(testLine, face) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, face text.Face) float64 {
	if textStr == "" || face == nil {
		return 0
	}

	width, _ := text.Measure(textStr, face, 0)
	return width
}
