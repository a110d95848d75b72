//go:build !android

package utils

// EnsureStorageDir 确保设置存储目录可用（非 Android 平台的空实现）
// gdata 在桌面和浏览器上会自行创建目录
func EnsureStorageDir(appName string) error {
	return nil
}
