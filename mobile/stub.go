//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 不带 -tags mobile 时 mobile.go/embed.go 不参与编译，
// 这里保证 ./... 下的包始终非空。
package mobile

// Dummy 与移动端构建导出同名函数
func Dummy() {}
