// gen 读取数据库连接配置，为 internal/model 下的表生成类型安全的查询代码。
// 产物提交到 internal/repository/query，模型变更后需要重新跑一遍。
package main

import (
	"ContainerIQ/internal/repository"
	"ContainerIQ/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
