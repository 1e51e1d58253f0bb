// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/embedded"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/scenes"
	"github.com/decker502/slingshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	resourceConfigPath = "assets/config/resources.yaml"
	gameplayConfigPath = "data/gameplay.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
	// GameplayConfigPath 从磁盘加载玩法配置，为空则使用内嵌的 data/gameplay.yaml
	GameplayConfigPath string
	// TapToContinue 非游戏状态下点击/触摸即可继续（移动端）
	// 移动端编译或设置 SLINGSHOT_MOBILE_EMULATE=1 时自动启用
	TapToContinue bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	quitEnabled              bool // 移动端没有 Esc 退出
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// Hotkeys 本帧触发的全局快捷键
type Hotkeys struct {
	Quit             bool // Esc
	ToggleFullscreen bool // F11 或 Alt+Enter
	ToggleFPS        bool // F3
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager(embedded.FS())
	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	gameplayConfig, err := loadGameplayConfig(cfg.GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	log.Printf("[Config] 玩法配置: %d 发弹药, %d 个目标, 命中判定 %s",
		gameplayConfig.Ammo.Count, len(gameplayConfig.Targets), gameplayConfig.Scoring.HitTest)

	// 设置存储（失败时降级为仅内存）
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	settingsManager, err := game.NewSettingsManager(game.OpenStorage(game.StorageAppName))
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	mobile := mobileMode(cfg)
	if mobile {
		log.Printf("[App] 移动端模式：点击继续，禁用 Esc 退出")
	}

	gameScene, err := scenes.NewGameScene(resourceManager, gameplayConfig, scenes.GameSceneOptions{
		TapToContinue: mobile,
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		settings:     settingsManager,
		quitEnabled:  !mobile,
	}, nil
}

// mobileMode 是否按移动端方式交互（没有键盘可用）
func mobileMode(cfg Config) bool {
	return cfg.TapToContinue || utils.IsMobile()
}

// loadGameplayConfig 优先读取磁盘上的配置文件，否则使用内嵌配置
func loadGameplayConfig(path string) (*config.GameplayConfig, error) {
	if path != "" {
		log.Printf("[Config] 从磁盘加载玩法配置: %s", path)
		return config.LoadGameplayConfig(path)
	}

	data, err := embedded.ReadFile(gameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", gameplayConfigPath, err)
	}
	return config.ParseGameplayConfig(data)
}

// readHotkeys 读取本帧的全局快捷键
func readHotkeys() Hotkeys {
	return Hotkeys{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: utils.IsFullscreenToggleJustPressed(),
		ToggleFPS:        inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.InitialWindowWidth, config.InitialWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.InitialWindowWidth, config.InitialWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if err := a.handleHotkeys(readHotkeys()); err != nil {
		return err
	}

	a.sceneManager.Update(config.FixedDeltaTime())
	return nil
}

// handleHotkeys 处理全局快捷键，退出时返回 ebiten.Termination
func (a *App) handleHotkeys(h Hotkeys) error {
	if h.Quit && a.quitEnabled {
		log.Printf("[App] Esc pressed, quitting")
		return ebiten.Termination
	}

	if h.ToggleFullscreen {
		a.toggleFullscreen()
	}

	if h.ToggleFPS {
		showFPS := a.settings.ToggleShowFPS()
		log.Printf("[App] ShowFPS = %v", showFPS)
		a.saveSettings()
	}

	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)

	if a.settings.GetSettings().ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 10, 10)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
