//go:build mobile

package utils

// IsMobile 移动端构建（-tags mobile）总是返回 true
func IsMobile() bool {
	return true
}

// PlatformName 返回平台名称（用于日志）
func PlatformName() string {
	return "mobile"
}
