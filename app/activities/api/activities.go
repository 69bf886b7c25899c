package main

import (
	"flag"
	"fmt"

	"school-activities/app/activities/api/internal/config"
	"school-activities/app/activities/api/internal/handler"
	"school-activities/app/activities/api/internal/svc"
	"school-activities/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/activities-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	response.SetupGlobalErrorHandler()

	// 1. 加载配置文件
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 2. 创建 REST 服务器
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 3. 初始化服务上下文（构造并注入活动目录）
	ctx := svc.NewServiceContext(c)

	// 4. 注册路由处理器
	handler.RegisterHandlers(server, ctx)

	// 5. 启动服务
	fmt.Printf("Starting activities-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// 课外活动报名服务入口
// 说明：
//   activities-api 是 Mergington 高中课外活动报名系统的 HTTP 接口层，负责：
//   - 活动列表与报名名单查询
//   - 学生报名、退出
//   - 托管报名页面静态站点
//
// 活动目录常驻内存，进程启动时填充固定的活动集合，不依赖外部存储。
//
// 启动命令：
//   go run activities.go -f etc/activities-api.yaml
