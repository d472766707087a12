//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端参数运行（用于本地调试）
const MobileEmulateEnv = "RESIGN_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

// PlatformName 返回平台名称（用于日志）
func PlatformName() string {
	if IsMobile() {
		return "desktop (mobile emulation)"
	}
	return "desktop"
}
