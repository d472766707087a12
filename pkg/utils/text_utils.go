package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本，"\n" 为强制换行
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在空格处断行，行首缩进保留
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil || maxWidth <= 0 {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, font, maxWidth)...)
	}
	return lines
}

func wrapParagraph(paragraph string, font *text.GoTextFace, maxWidth float64) []string {
	if measureTextWidth(paragraph, font) <= maxWidth {
		return []string{paragraph}
	}

	trimmed := strings.TrimLeft(paragraph, " ")
	indent := paragraph[:len(paragraph)-len(trimmed)]

	var lines []string
	current := indent
	for _, word := range strings.Fields(trimmed) {
		candidate := indent + word
		if current != indent {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}

		// 当前行已有内容，先结束当前行
		if current != indent {
			lines = append(lines, current)
			current = indent
		}
		// 单词本身超宽，按字符断开
		for measureTextWidth(indent+word, font) > maxWidth {
			head := splitToWidth(word, indent, font, maxWidth)
			lines = append(lines, indent+head)
			word = word[len(head):]
		}
		current = indent + word
	}
	if current != indent || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// splitToWidth 返回 word 在 maxWidth 内能放下的最长前缀（至少一个字符）
func splitToWidth(word, indent string, font *text.GoTextFace, maxWidth float64) string {
	end := 0
	for end < len(word) {
		_, size := utf8.DecodeRuneInString(word[end:])
		if end > 0 && measureTextWidth(indent+word[:end+size], font) > maxWidth {
			break
		}
		end += size
	}
	return word[:end]
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
