package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/gameplay"
	"github.com/decker502/slingshot/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	// TextScale 位图字体放大倍数（Face7x13 在 1920x1080 画布上太小）
	TextScale = 2.0
	// textRightMargin 自动换行时保留的右边距
	textRightMargin = 50.0
)

// placeholderColor 缺失图片时绘制的占位色块
var placeholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// EbitenRenderer 把 gameplay.Renderer 的绘制请求转换为 Ebitengine 调用
// 每帧调用 Begin 绑定目标图像后再交给 GameController.Render
type EbitenRenderer struct {
	resourceManager *game.ResourceManager
	face            text.Face
	screen          *ebiten.Image
	missing         map[gameplay.SpriteID]bool // 已报告过缺失的图片，避免每帧刷日志
}

// NewEbitenRenderer 创建渲染器
func NewEbitenRenderer(rm *game.ResourceManager) *EbitenRenderer {
	return &EbitenRenderer{
		resourceManager: rm,
		face:            text.NewGoXFace(basicfont.Face7x13),
		missing:         make(map[gameplay.SpriteID]bool),
	}
}

// Begin 绑定本帧的绘制目标
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

// DrawSprite 把图片缩放到 w x h 后绘制在 (x, y)
func (r *EbitenRenderer) DrawSprite(id gameplay.SpriteID, x, y, w, h float64) {
	if r.screen == nil {
		return
	}

	img := r.resourceManager.GetImageByID(string(id))
	if img == nil {
		if !r.missing[id] {
			log.Printf("[EbitenRenderer] 图片未加载: %s，使用占位色块", id)
			r.missing[id] = true
		}
		vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), placeholderColor, false)
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}

// DrawText 在 (x, y) 绘制文本，(x, y) 为首行左上角
// 超出画布宽度的文本自动换行
func (r *EbitenRenderer) DrawText(s string, x, y float64, c color.Color) {
	if r.screen == nil {
		return
	}

	maxWidth := (float64(config.GameWindowWidth) - x - textRightMargin) / TextScale
	m := r.face.Metrics()
	lineHeight := (m.HAscent + m.HDescent) * TextScale

	for i, line := range utils.WrapText(s, r.face, maxWidth) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(TextScale, TextScale)
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(r.screen, line, r.face, op)
	}
}

// DrawLine 绘制线段
func (r *EbitenRenderer) DrawLine(x0, y0, x1, y1, width float64, c color.Color) {
	if r.screen == nil {
		return
	}
	vector.StrokeLine(r.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}
