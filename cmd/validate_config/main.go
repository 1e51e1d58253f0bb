// validate_config 检查玩法配置和资源配置
//
// 用法（在项目根目录运行）：
//
//	go run ./cmd/validate_config
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/game"
)

func main() {
	gameplayPath := flag.String("gameplay", "data/gameplay.yaml", "玩法配置文件路径")
	resourcesPath := flag.String("resources", "assets/config/resources.yaml", "资源配置文件路径（相对于 -root）")
	root := flag.String("root", ".", "项目根目录")
	flag.Parse()

	failed := false

	cfg, err := config.LoadGameplayConfig(*gameplayPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", *gameplayPath, err)
		failed = true
	} else {
		fmt.Printf("✅ %s: %d 发弹药, %d 个目标, 命中判定 %s\n",
			*gameplayPath, cfg.Ammo.Count, len(cfg.Targets), cfg.Scoring.HitTest)
	}

	rm := game.NewResourceManager(os.DirFS(*root))
	if err := rm.LoadResourceConfig(*resourcesPath); err != nil {
		fmt.Printf("❌ %s: %v\n", *resourcesPath, err)
		os.Exit(1)
	}

	for _, id := range []string{"IMAGE_MENU", "IMAGE_ROCK", "IMAGE_ALIEN"} {
		if !rm.HasResource(id) {
			fmt.Printf("❌ 缺少资源: %s\n", id)
			failed = true
		}
	}

	backgrounds := rm.ResourceIDs("IMAGE_BACKGROUND")
	if len(backgrounds) == 0 {
		fmt.Printf("❌ 没有任何 IMAGE_BACKGROUND* 背景\n")
		failed = true
	} else {
		fmt.Printf("✅ 背景: %v\n", backgrounds)
	}

	if err := rm.LoadResourceGroup("init"); err != nil {
		fmt.Printf("❌ 资源组 init 加载失败: %v\n", err)
		failed = true
	} else {
		fmt.Printf("✅ 资源组 init 全部可解码\n")
	}

	if failed {
		os.Exit(1)
	}
}
