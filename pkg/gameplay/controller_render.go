package gameplay

import (
	"fmt"
	"image/color"

	"github.com/decker502/slingshot/pkg/config"
)

var (
	colorBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorRed   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	colorBand  = color.RGBA{R: 90, G: 50, B: 20, A: 255}
)

// 界面文本
const (
	textTutorialTitle = "HOW TO PLAY"
	textTutorialAim   = "Use the mouse to aim the rocks in the slingshot."
	textTutorialGoal  = "Try to hit the aliens using the rocks to win the level, complete it in the least number of rocks to earn the most points."
	textContinue      = "Press Space to continue"
	textStart         = "Press Space to start"
	textWin           = "YOU WIN!"
	textLose          = "YOU LOSE"
	textPlayAgain     = "Press Space to play again"
	textRetry         = "Press Space to try again"
)

// Render 根据当前状态发出绘制请求
func (gc *GameController) Render(r Renderer) {
	w, h := float64(config.GameWindowWidth), float64(config.GameWindowHeight)

	if gc.state == SceneMenu {
		r.DrawSprite(gc.assets.Menu, 0, 0, w, h)
		r.DrawText(textStart, w/2-120, h-200, colorBlack)
		return
	}

	r.DrawSprite(gc.assets.Background, 0, 0, w, h)

	switch gc.state {
	case SceneTutorial:
		r.DrawText(textTutorialTitle, 50, 100, colorBlue)
		r.DrawText(textTutorialAim, 60, 150, colorBlack)
		r.DrawText(textTutorialGoal, 60, 175, colorBlack)
		r.DrawText(textContinue, w/2-60, 500, colorBlack)
	case ScenePlaying:
		gc.renderField(r)
		gc.renderHUD(r)
	case SceneWon:
		gc.renderTargets(r)
		gc.renderResult(r, textWin, textPlayAgain, colorBlue)
	case SceneLost:
		gc.renderTargets(r)
		gc.renderResult(r, textLose, textRetry, colorRed)
	}
}

func (gc *GameController) renderHUD(r Renderer) {
	r.DrawText(fmt.Sprintf("Score: %d", gc.score), 50, 100, colorBlue)
	r.DrawText(fmt.Sprintf("Rocks: %d", gc.ammo.Remaining()), 50, 130, colorBlack)
}

func (gc *GameController) renderField(r Renderer) {
	for _, box := range gc.ammo.StandIns() {
		r.DrawSprite(gc.assets.StandIn, box.X, box.Y, box.W, box.H)
	}

	gc.renderTargets(r)

	p := &gc.projectile
	if p.Grabbed {
		// 弹弓皮筋：从发射点中心拉到石块中心
		fork := Rect{X: gc.anchor.X, Y: gc.anchor.Y, W: p.Size, H: p.Size}.Center()
		c := p.Box().Center()
		r.DrawLine(fork.X, fork.Y, c.X, c.Y, 4, colorBand)
	}
	r.DrawSprite(gc.assets.Projectile, p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

func (gc *GameController) renderTargets(r Renderer) {
	for i := 0; i < gc.roster.Len(); i++ {
		t := gc.roster.At(i)
		if !t.Visible {
			continue
		}
		r.DrawSprite(gc.assets.Target, t.Box.X, t.Box.Y, t.Box.W, t.Box.H)
	}
}

func (gc *GameController) renderResult(r Renderer, title, prompt string, c color.Color) {
	w := float64(config.GameWindowWidth)
	r.DrawText(title, w/2-60, 400, c)
	r.DrawText(fmt.Sprintf("Final score: %d", gc.score), w/2-90, 450, colorBlack)
	r.DrawText(prompt, w/2-120, 500, colorBlack)
}
