//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// make prepare-mobile 会把 data/ 复制到此目录。
package mobile

import "embed"

//go:embed data/presentation.yaml data/stages.yaml
var dataFS embed.FS
