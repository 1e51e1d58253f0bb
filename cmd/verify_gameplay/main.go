// verify_gameplay 无窗口的弹道验证工具
//
// 用法：
//
//	go run ./cmd/verify_gameplay -shots "-120,90;-150,60"
//	go run ./cmd/verify_gameplay -solve
//
// -shots 按顺序发射，每一发给出相对发射点的拉弓偏移 (dx,dy)；
// -solve 在最大拉弓半径内搜索能命中每个目标的偏移，用于调整 data/gameplay.yaml。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/gameplay"
)

var (
	configPath = flag.String("config", "data/gameplay.yaml", "玩法配置文件路径")
	shots      = flag.String("shots", "", "拉弓偏移列表，格式 dx,dy;dx,dy")
	solve      = flag.Bool("solve", false, "搜索每个目标的命中偏移")
	step       = flag.Float64("step", 5, "搜索步长（像素）")
	maxTicks   = flag.Int("max-ticks", 60*20, "单发最多模拟的帧数")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameplayConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *solve:
		runSolve(cfg)
	case *shots != "":
		offsets, err := parseShots(*shots)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
		runShots(cfg, offsets)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// parseShots 解析 "dx,dy;dx,dy" 格式的偏移列表
func parseShots(s string) ([]gameplay.Vec2, error) {
	var offsets []gameplay.Vec2
	for i, part := range strings.Split(s, ";") {
		xy := strings.Split(strings.TrimSpace(part), ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("第 %d 发格式错误: %q（应为 dx,dy）", i+1, part)
		}
		dx, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 发 dx 无效: %w", i+1, err)
		}
		dy, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("第 %d 发 dy 无效: %w", i+1, err)
		}
		offsets = append(offsets, gameplay.Vec2{X: dx, Y: dy})
	}
	return offsets, nil
}

// newPlaying 创建控制器并直接进入游戏状态
func newPlaying(cfg *config.GameplayConfig) *gameplay.GameController {
	gc := gameplay.NewGameController(cfg, gameplay.Assets{})
	confirm := gameplay.KeyEvent{Key: gameplay.KeyConfirm, Action: gameplay.KeyReleased}
	gc.HandleKey(confirm) // Menu -> Tutorial
	gc.HandleKey(confirm) // Tutorial -> Playing
	return gc
}

// shotResult 单发结果
type shotResult struct {
	target int // 命中的目标下标，-1 表示未命中
	ticks  int
	fired  bool
}

// fire 拉弓、松手并模拟到这一发结束
func fire(gc *gameplay.GameController, offset gameplay.Vec2) shotResult {
	visible := make([]bool, gc.TargetCount())
	for i := range visible {
		visible[i] = gc.Target(i).Visible
	}

	grab := gc.Projectile().Box().Center()
	pull := grab.Add(offset)
	gc.HandlePointer(gameplay.PointerEvent{Action: gameplay.PointerPressed, X: grab.X, Y: grab.Y})
	gc.HandlePointer(gameplay.PointerEvent{Action: gameplay.PointerMoved, X: pull.X, Y: pull.Y})
	gc.HandlePointer(gameplay.PointerEvent{Action: gameplay.PointerReleased, X: pull.X, Y: pull.Y})

	res := shotResult{target: -1}
	if !gc.Projectile().InFlight {
		return res
	}
	res.fired = true

	dt := config.FixedDeltaTime()
	for res.ticks < *maxTicks && gc.Projectile().InFlight {
		gc.Update(dt)
		res.ticks++
	}

	for i, was := range visible {
		if was && !gc.Target(i).Visible {
			res.target = i
		}
	}
	return res
}

func runShots(cfg *config.GameplayConfig, offsets []gameplay.Vec2) {
	gc := newPlaying(cfg)
	for i, off := range offsets {
		if gc.State() != gameplay.ScenePlaying {
			fmt.Printf("⚠️  第 %d 发之前游戏已结束 (%s)\n", i+1, gc.State())
			break
		}

		res := fire(gc, off)
		switch {
		case !res.fired:
			fmt.Printf("第 %d 发 (%.0f, %.0f): 超出拉弓半径，未发射\n", i+1, off.X, off.Y)
		case res.target >= 0:
			fmt.Printf("第 %d 发 (%.0f, %.0f): ✅ 命中目标 %d（%d 帧）\n", i+1, off.X, off.Y, res.target, res.ticks)
		default:
			fmt.Printf("第 %d 发 (%.0f, %.0f): 未命中（%d 帧）\n", i+1, off.X, off.Y, res.ticks)
		}
	}

	fmt.Printf("\n状态: %s  得分: %d  剩余弹药: %d  剩余目标: %d\n",
		gc.State(), gc.Score(), gc.Ammo(), gc.VisibleTargets())
}

func runSolve(cfg *config.GameplayConfig) {
	radius := cfg.Launch.MaxAimRadius
	solutions := make(map[int]gameplay.Vec2)

	for dx := -radius; dx <= 0; dx += *step {
		for dy := 0.0; dy <= radius; dy += *step {
			off := gameplay.Vec2{X: dx, Y: dy}
			if off.Len() > radius {
				continue
			}
			res := fire(newPlaying(cfg), off)
			if res.target < 0 {
				continue
			}
			if _, found := solutions[res.target]; !found {
				solutions[res.target] = off
			}
		}
	}

	for i := range cfg.Targets {
		if off, ok := solutions[i]; ok {
			fmt.Printf("目标 %d: ✅ 拉弓偏移 (%.0f, %.0f)\n", i, off.X, off.Y)
		} else {
			fmt.Printf("目标 %d: ❌ 在半径 %.0f 内无解\n", i, radius)
		}
	}
}
