package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// HitTestMode 命中判定方式
type HitTestMode string

const (
	// HitTestContainment 石块碰撞盒必须完全位于目标碰撞盒内部才算命中
	HitTestContainment HitTestMode = "containment"
	// HitTestOverlap 碰撞盒有任何重叠即算命中
	HitTestOverlap HitTestMode = "overlap"
)

// Vec2 YAML 中的二维坐标
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameplayConfig 弹弓玩法配置
//
// 包含发射点、物理常量、弹药和目标布局。
// 所有坐标均为逻辑画布坐标（1920x1080，Y 轴向下）。
//
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	Launch  LaunchConfig   `yaml:"launch"`
	Bounds  BoundsConfig   `yaml:"bounds"`
	Ammo    AmmoConfig     `yaml:"ammo"`
	Targets []TargetConfig `yaml:"targets"`
	Scoring ScoringConfig  `yaml:"scoring"`
}

// LaunchConfig 发射相关参数
type LaunchConfig struct {
	// Anchor 发射点（石块静止时的左上角位置）
	Anchor Vec2 `yaml:"anchor"`

	// ProjectileSize 石块边长（正方形碰撞盒）
	ProjectileSize float64 `yaml:"projectileSize"`

	// GrabTolerance 抓取容差：石块碰撞盒向外扩展的像素数
	GrabTolerance float64 `yaml:"grabTolerance"`

	// MaxAimRadius 最大拉弓半径，超出后松手回弹
	MaxAimRadius float64 `yaml:"maxAimRadius"`

	// SpeedMultiplier 飞行速度倍率
	SpeedMultiplier float64 `yaml:"speedMultiplier"`

	// Gravity 重力加速度（速度单位/秒，方向向下）
	Gravity float64 `yaml:"gravity"`
}

// BoundsConfig 场地边界
type BoundsConfig struct {
	// FloorY 地面高度，石块底边超过该值视为落地
	FloorY float64 `yaml:"floorY"`
}

// AmmoConfig 弹药配置
type AmmoConfig struct {
	// Count 每局弹药数
	Count int `yaml:"count"`

	// StandIn 备用石块的排列位置
	StandIn StandInConfig `yaml:"standIn"`
}

// StandInConfig 备用石块（界面左下角一排）的布局
type StandInConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Spacing float64 `yaml:"spacing"`
	Size    float64 `yaml:"size"`
}

// TargetConfig 单个目标的位置和尺寸
type TargetConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig 计分配置
type ScoringConfig struct {
	// HitScore 每次命中加分
	HitScore int `yaml:"hitScore"`

	// HitTest 命中判定方式
	HitTest HitTestMode `yaml:"hitTest"`
}

// DefaultGameplayConfig 返回默认玩法配置
// 默认布局：发射点 (300,700)，5 发弹药，3 个外星人目标
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Launch: LaunchConfig{
			Anchor:          Vec2{X: 300, Y: 700},
			ProjectileSize:  32,
			GrabTolerance:   24,
			MaxAimRadius:    200,
			SpeedMultiplier: 5,
			Gravity:         60,
		},
		Bounds: BoundsConfig{
			FloorY: 900,
		},
		Ammo: AmmoConfig{
			Count: 5,
			StandIn: StandInConfig{
				X:       100,
				Y:       825,
				Spacing: 44,
				Size:    48,
			},
		},
		Targets: []TargetConfig{
			{X: 1300, Y: 825, Width: 52, Height: 52},
			{X: 1360, Y: 825, Width: 52, Height: 52},
			{X: 1420, Y: 825, Width: 52, Height: 52},
		},
		Scoring: ScoringConfig{
			HitScore: 1000,
			HitTest:  HitTestContainment,
		},
	}
}

// ParseGameplayConfig 解析 YAML 格式的玩法配置
//
// 未出现在 YAML 中的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *GameplayConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// LoadGameplayConfig 从文件加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有浮点字段均为有限值（拒绝 .nan / .inf）
//   - 尺寸、半径、倍率、重力为正数
//   - 至少 1 发弹药、至少 1 个目标
//   - 命中判定方式合法；包含判定下石块必须能放进每个目标
func (c *GameplayConfig) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}
	if c.Launch.ProjectileSize <= 0 {
		return fmt.Errorf("projectileSize must be > 0, got %.1f", c.Launch.ProjectileSize)
	}
	if c.Launch.GrabTolerance < 0 {
		return fmt.Errorf("grabTolerance must be >= 0, got %.1f", c.Launch.GrabTolerance)
	}
	if c.Launch.MaxAimRadius <= 0 {
		return fmt.Errorf("maxAimRadius must be > 0, got %.1f", c.Launch.MaxAimRadius)
	}
	if c.Launch.SpeedMultiplier <= 0 {
		return fmt.Errorf("speedMultiplier must be > 0, got %.2f", c.Launch.SpeedMultiplier)
	}
	// 没有重力时水平或静止发射的石块永远不会出界
	if c.Launch.Gravity <= 0 {
		return fmt.Errorf("gravity must be > 0, got %.2f", c.Launch.Gravity)
	}
	if c.Bounds.FloorY <= c.Launch.Anchor.Y+c.Launch.ProjectileSize {
		return fmt.Errorf("floorY (%.1f) must be below the resting projectile (anchor y %.1f + size %.1f)",
			c.Bounds.FloorY, c.Launch.Anchor.Y, c.Launch.ProjectileSize)
	}
	if c.Ammo.Count <= 0 {
		return fmt.Errorf("ammo count must be > 0, got %d", c.Ammo.Count)
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target is required")
	}
	if c.Scoring.HitScore <= 0 {
		return fmt.Errorf("hitScore must be > 0, got %d", c.Scoring.HitScore)
	}

	switch c.Scoring.HitTest {
	case HitTestContainment, HitTestOverlap:
	default:
		return fmt.Errorf("unknown hitTest mode %q (want %q or %q)",
			c.Scoring.HitTest, HitTestContainment, HitTestOverlap)
	}

	for i, tgt := range c.Targets {
		if tgt.Width <= 0 || tgt.Height <= 0 {
			return fmt.Errorf("target %d has invalid size %.1fx%.1f", i, tgt.Width, tgt.Height)
		}
		if c.Scoring.HitTest == HitTestContainment &&
			(tgt.Width < c.Launch.ProjectileSize || tgt.Height < c.Launch.ProjectileSize) {
			return fmt.Errorf("target %d (%.1fx%.1f) can never contain a %.1f projectile",
				i, tgt.Width, tgt.Height, c.Launch.ProjectileSize)
		}
	}

	return nil
}

// floatField 参与有限性检查的配置字段
type floatField struct {
	name  string
	value float64
}

// checkFinite 拒绝 NaN 和无穷大：与 NaN 的比较总为 false，会绕过后续的范围检查
func (c *GameplayConfig) checkFinite() error {
	fields := []floatField{
		{"anchor.x", c.Launch.Anchor.X},
		{"anchor.y", c.Launch.Anchor.Y},
		{"projectileSize", c.Launch.ProjectileSize},
		{"grabTolerance", c.Launch.GrabTolerance},
		{"maxAimRadius", c.Launch.MaxAimRadius},
		{"speedMultiplier", c.Launch.SpeedMultiplier},
		{"gravity", c.Launch.Gravity},
		{"floorY", c.Bounds.FloorY},
		{"standIn.x", c.Ammo.StandIn.X},
		{"standIn.y", c.Ammo.StandIn.Y},
		{"standIn.spacing", c.Ammo.StandIn.Spacing},
		{"standIn.size", c.Ammo.StandIn.Size},
	}
	for i, tgt := range c.Targets {
		fields = append(fields,
			floatField{fmt.Sprintf("targets[%d].x", i), tgt.X},
			floatField{fmt.Sprintf("targets[%d].y", i), tgt.Y},
			floatField{fmt.Sprintf("targets[%d].width", i), tgt.Width},
			floatField{fmt.Sprintf("targets[%d].height", i), tgt.Height},
		)
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	return nil
}
