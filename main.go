package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/decker502/jungle/pkg/app"
	"github.com/decker502/jungle/pkg/config"
	"github.com/decker502/jungle/pkg/embedded"
	"github.com/decker502/jungle/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", "engine.yaml", "引擎配置文件路径")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	fromDisk   = flag.Bool("disk", false, "从工作目录读取资源，而不是使用嵌入资源")
	level      = flag.Int("level", 1, "启动关卡")
)

// 非 verbose 模式下标准 log 被丢弃，致命错误单独输出到 stderr
var fatal = log.New(os.Stderr, "", log.LstdFlags)

func main() {
	flag.Parse()

	cfg, err := config.LoadEngineConfig(*configPath)
	if err != nil {
		fatal.Fatalf("配置加载失败: %v", err)
	}
	if *verbose {
		cfg.Verbose = true
	}
	app.ConfigureLogging(cfg.Verbose)

	// 资源来源：嵌入资源或磁盘
	embedded.Init(assetsFS)
	assets := game.NewAssetManagerFS(embedded.FS())
	files := embedded.FS()
	if *fromDisk {
		assets = game.NewAssetManager()
		files = nil
	}

	if err := assets.LoadAssetConfig(cfg.Assets); err != nil {
		fatal.Fatalf("资源配置加载失败: %v", err)
	}
	if err := assets.LoadAll(); err != nil {
		fatal.Fatalf("资源加载失败: %v", err)
	}

	// 设置持久化失败时降级为仅内存设置
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "jungle"}); err != nil {
		log.Printf("[Settings] Warning: gdata unavailable: %v", err)
	} else {
		gdataManager = m
	}
	settings := game.NewSettingsManager(gdataManager)

	gameApp, err := app.NewApp(app.Config{
		Engine:   cfg,
		Assets:   assets,
		Settings: settings,
		Files:    files,
		Level:    *level,
	})
	if err != nil {
		fatal.Fatalf("游戏初始化失败: %v", err)
	}
	gameApp.ConfigureWindow()

	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	assets.ClearAssets()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		fatal.Fatal(err)
	}
}
