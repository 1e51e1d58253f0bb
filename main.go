package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/slingshot/pkg/app"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	fullscreen := flag.Bool("fullscreen", false, "以全屏模式启动")
	gameplayConfig := flag.String("config", "", "玩法配置文件路径（默认使用内嵌的 data/gameplay.yaml）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:            *verbose,
		Fullscreen:         *fullscreen,
		GameplayConfigPath: *gameplayConfig,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.InitialWindowWidth, config.InitialWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
