// tty 在终端中运行第一关：车辆以字符显示，逻辑与窗口版本相同
//
// 按键：Esc / Ctrl-C 退出，r 重新生成驶出屏幕的车辆
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/jungle/pkg/app"
	"github.com/decker502/jungle/pkg/config"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "engine.yaml", "引擎配置文件路径")
	logPath    = flag.String("log", "", "日志文件路径（终端被占用，默认不输出日志）")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		app.ConfigureLogging(false)
	}

	cfg, err := config.LoadEngineConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法创建终端屏幕: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}

	driver, err := NewDriver(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	if !*mute {
		if err := driver.initAudio(); err != nil {
			// 没有声音也可以运行
			log.Printf("[TTY] Audio initialization failed: %v", err)
		}
	}

	err = driver.Run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
