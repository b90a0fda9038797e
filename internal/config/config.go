// 包 config：运行配置；统一从 .env 与环境变量读取，未设置时回退到门户约定的固定路径
package config

import (
	"boundou-check/internal/logger"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// 门户约定的相对路径
const (
	DefaultBoundaryPath   = "data/communes_boundou.geojson"
	DefaultParcelPath     = "data/parcelles.json"
	DefaultCommunesConfig = "data/communes.yaml"
)

// PresentationFiles：门户前端文件，仅检查存在性
var PresentationFiles = []string{"index.html", "app.js", "style.css"}

// Config：一次运行的全部配置
type Config struct {
	Root               string
	BoundaryPath       string
	ParcelPath         string
	CommunesConfigPath string
	ReportDetail       bool
	PushgatewayURL     string
}

// Load：加载 .env 后读取环境变量
// 背景：与服务端一致的配置方式；.env 缺失时静默忽略，没有任何命令行参数。
func Load() Config {
	if err := godotenv.Load(".env"); err == nil {
		logger.L().Debug("config_env_loaded", "file", ".env")
	}
	return FromEnv()
}

// FromEnv：只读环境变量，不触碰 .env（测试使用）
func FromEnv() Config {
	c := Config{
		Root:               getenv("PORTAL_ROOT", "."),
		BoundaryPath:       getenv("BOUNDARY_PATH", DefaultBoundaryPath),
		ParcelPath:         getenv("PARCEL_PATH", DefaultParcelPath),
		CommunesConfigPath: getenv("COMMUNES_CONFIG", DefaultCommunesConfig),
		PushgatewayURL:     strings.TrimSpace(os.Getenv("PUSHGATEWAY_URL")),
	}
	if v := os.Getenv("REPORT_DETAIL"); v != "" {
		// 解析失败按 false 处理
		c.ReportDetail, _ = strconv.ParseBool(v)
	}
	logger.L().Debug("config_ready", "root", c.Root, "boundary", c.BoundaryPath, "parcels", c.ParcelPath, "communes_config", c.CommunesConfigPath)
	return c
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// Path 把相对路径解析到门户根目录下；绝对路径原样返回
func (c Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}

// LayoutFiles：布局检查的五个相对路径（前端三件 + 两份数据）
func (c Config) LayoutFiles() []string {
	out := append([]string{}, PresentationFiles...)
	return append(out, c.BoundaryPath, c.ParcelPath)
}
