//go:build mobile

// embed.go - 移动端数据文件嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/starfield.yaml 复制到 mobile/data/ 下：
//
//	mkdir -p mobile/data && cp data/starfield.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/starfield.yaml
var dataFS embed.FS
