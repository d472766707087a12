//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口在 mobile.go 和 embed.go 中，需要 -tags mobile 和
// make prepare-mobile 复制的 data/ 目录；普通的 go build ./... 只编译此文件。
package mobile

// Dummy 与移动端构建导出相同的符号
func Dummy() {}
