package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/gameplay"
	"github.com/decker502/slingshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 资源 ID（见 assets/config/resources.yaml）
const (
	ResourceGroupInit      = "init"
	ImageMenu              = "IMAGE_MENU"
	ImageBackgroundPrefix  = "IMAGE_BACKGROUND"
	ImageRock              = "IMAGE_ROCK"
	ImageAlien             = "IMAGE_ALIEN"
	defaultBackgroundImage = "IMAGE_BACKGROUND1"
)

// GameSceneOptions 场景选项
type GameSceneOptions struct {
	// TapToContinue 非游戏状态下点击/触摸松开等同于按下空格（触屏设备没有键盘）
	TapToContinue bool
	// Rand 背景选择用的随机源，nil 时使用全局随机源
	Rand *rand.Rand
}

// GameScene 弹弓游戏场景
// 负责把 Ebitengine 的输入转换为游戏事件，并把渲染请求交给 EbitenRenderer
type GameScene struct {
	resourceManager *game.ResourceManager
	controller      *gameplay.GameController
	renderer        *EbitenRenderer
	pointer         utils.PointerTranslator
	tapToContinue   bool
	background      string
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - rm: 已加载资源配置的资源管理器
//   - cfg: 已验证的玩法配置
//   - opts: 场景选项
//
// 返回：
//   - error: init 资源组加载失败时返回错误
func NewGameScene(rm *game.ResourceManager, cfg *config.GameplayConfig, opts GameSceneOptions) (*GameScene, error) {
	if err := rm.LoadResourceGroup(ResourceGroupInit); err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}

	background := pickBackground(rm.ResourceIDs(ImageBackgroundPrefix), opts.Rand)
	log.Printf("[GameScene] 使用背景: %s", background)

	assets := gameplay.Assets{
		Menu:       ImageMenu,
		Background: gameplay.SpriteID(background),
		Projectile: ImageRock,
		StandIn:    ImageRock,
		Target:     ImageAlien,
	}

	return &GameScene{
		resourceManager: rm,
		controller:      gameplay.NewGameController(cfg, assets),
		renderer:        NewEbitenRenderer(rm),
		tapToContinue:   opts.TapToContinue,
		background:      background,
	}, nil
}

// pickBackground 从候选背景中随机选择一张
func pickBackground(ids []string, r *rand.Rand) string {
	if len(ids) == 0 {
		return defaultBackgroundImage
	}
	if r != nil {
		return ids[r.IntN(len(ids))]
	}
	return ids[rand.IntN(len(ids))]
}

// Name 实现 game.Named 接口
func (s *GameScene) Name() string {
	return "GameScene"
}

// Controller 返回游戏控制器
func (s *GameScene) Controller() *gameplay.GameController {
	return s.controller
}

// Background 返回本次使用的背景资源 ID
func (s *GameScene) Background() string {
	return s.background
}

// Update 读取本帧输入并推进游戏
func (s *GameScene) Update(deltaTime float64) {
	utils.UpdateLastTouchPosition()

	keys := utils.KeyEvents(gameplay.KeyConfirm, utils.ReadKey(ebiten.KeySpace))
	pointers := s.pointer.Translate(utils.ReadPointer())
	s.step(keys, pointers, deltaTime)
}

// step 按固定顺序投递事件：先按键，再指针，最后推进物理
func (s *GameScene) step(keys []gameplay.KeyEvent, pointers []gameplay.PointerEvent, deltaTime float64) {
	for _, ev := range keys {
		s.controller.HandleKey(ev)
	}

	for _, ev := range pointers {
		state := s.controller.State()
		s.controller.HandlePointer(ev)
		if s.tapToContinue && state != gameplay.ScenePlaying && ev.Action == gameplay.PointerReleased {
			s.controller.HandleKey(gameplay.KeyEvent{Key: gameplay.KeyConfirm, Action: gameplay.KeyReleased})
		}
	}

	s.controller.Update(deltaTime)
}

// Draw 绘制当前状态
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderer.Begin(screen)
	s.controller.Render(s.renderer)
}
